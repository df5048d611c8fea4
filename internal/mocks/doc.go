// Package mocks provides hand-written test doubles for the task store and
// service interfaces.
//
// Each mock exposes one function field per interface method. A nil field
// falls back to default behaviour: MockTaskStore keeps tasks in memory and
// MockTaskService returns zero values.
//
//	svc := &mocks.MockTaskService{
//	    GetTaskByIDFn: func(ctx context.Context, id int64) (*domain.Task, bool, error) {
//	        return nil, false, nil
//	    },
//	}
package mocks
