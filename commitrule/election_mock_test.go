// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commitrule

import (
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/luxfi/dagcommit/anchor"
	"github.com/luxfi/dagcommit/dag"
)

// MockElection is a hand-written mock of anchor.Election, in the shape
// mockgen would generate for a single-method interface. It exists so
// the determinism test can stub the round->author mapping directly
// instead of wiring a full validator set through anchor.RoundRobin.
type MockElection struct {
	ctrl     *gomock.Controller
	recorder *MockElectionMockRecorder
}

type MockElectionMockRecorder struct {
	mock *MockElection
}

func NewMockElection(ctrl *gomock.Controller) *MockElection {
	mock := &MockElection{ctrl: ctrl}
	mock.recorder = &MockElectionMockRecorder{mock}
	return mock
}

func (m *MockElection) EXPECT() *MockElectionMockRecorder {
	return m.recorder
}

func (m *MockElection) GetAnchor(round dag.Round) dag.Author {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAnchor", round)
	author, _ := ret[0].(dag.Author)
	return author
}

func (mr *MockElectionMockRecorder) GetAnchor(round interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAnchor", reflect.TypeOf((*MockElection)(nil).GetAnchor), round)
}

var _ anchor.Election = (*MockElection)(nil)
