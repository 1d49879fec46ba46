package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hftecno/treasury/internal/model"
	"github.com/hftecno/treasury/internal/repository"
)

type MockMembershipFeeRepository struct {
	mock.Mock
}

func (m *MockMembershipFeeRepository) Create(ctx context.Context, rec *model.MembershipFeeRecord) (*model.MembershipFeeRecord, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MembershipFeeRecord), args.Error(1)
}

func (m *MockMembershipFeeRepository) Get(ctx context.Context, id int64) (*model.MembershipFeeRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MembershipFeeRecord), args.Error(1)
}

func (m *MockMembershipFeeRepository) Update(ctx context.Context, rec *model.MembershipFeeRecord) (*model.MembershipFeeRecord, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MembershipFeeRecord), args.Error(1)
}

func (m *MockMembershipFeeRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMembershipFeeRepository) List(ctx context.Context, f model.MembershipFeeFilter) ([]*model.MembershipFeeRecord, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*model.MembershipFeeRecord), args.Get(1).(int64), args.Error(2)
}

func TestMembershipService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate triple becomes a field error", func(t *testing.T) {
		repo := new(MockMembershipFeeRepository)
		repo.On("Create", ctx, mock.AnythingOfType("*model.MembershipFeeRecord")).
			Return(nil, repository.ErrDuplicateMembershipFee)

		svc := NewMembershipService(repo)
		_, err := svc.Create(ctx, model.MembershipFeeCreateRequest{
			AssigneeName: "Maria", Month: 3, Year: 2024,
		})

		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, model.ErrCodeUniqueViolation, verr.Fields[0].Code)
	})

	t.Run("out-of-range month rejected before the repository", func(t *testing.T) {
		repo := new(MockMembershipFeeRepository)
		svc := NewMembershipService(repo)

		_, err := svc.Create(ctx, model.MembershipFeeCreateRequest{
			AssigneeName: "Maria", Month: 13, Year: 2024,
		})
		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("assignee name trimmed", func(t *testing.T) {
		repo := new(MockMembershipFeeRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(rec *model.MembershipFeeRecord) bool {
			return rec.AssigneeName == "Maria"
		})).Return(&model.MembershipFeeRecord{ID: 1, AssigneeName: "Maria"}, nil)

		svc := NewMembershipService(repo)
		_, err := svc.Create(ctx, model.MembershipFeeCreateRequest{
			AssigneeName: "  Maria  ", Month: 3, Year: 2024,
		})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestMembershipService_Get_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := new(MockMembershipFeeRepository)
	repo.On("Get", ctx, int64(99)).Return(nil, repository.ErrEntryNotFound)

	svc := NewMembershipService(repo)
	_, err := svc.Get(ctx, 99)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}
