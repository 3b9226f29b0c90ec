package mock

import (
	"context"

	"github.com/mlipski/siteql"
)

var _ siteql.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of siteql.RecordService.
type RecordService struct {
	CreateRecordFn             func(ctx context.Context, rec *siteql.Record) error
	FindRecordByIDFn           func(ctx context.Context, id int64) (*siteql.Record, error)
	FindRecordsFn              func(ctx context.Context, filter siteql.RecordFilter) ([]*siteql.Record, error)
	DeleteRecordsByURLPrefixFn func(ctx context.Context, prefix string) (int64, error)
	DeleteAllRecordsFn         func(ctx context.Context) (int64, error)
}

func (s *RecordService) CreateRecord(ctx context.Context, rec *siteql.Record) error {
	return s.CreateRecordFn(ctx, rec)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id int64) (*siteql.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter siteql.RecordFilter) ([]*siteql.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecordsByURLPrefix(ctx context.Context, prefix string) (int64, error) {
	return s.DeleteRecordsByURLPrefixFn(ctx, prefix)
}

func (s *RecordService) DeleteAllRecords(ctx context.Context) (int64, error) {
	return s.DeleteAllRecordsFn(ctx)
}
