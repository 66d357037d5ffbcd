package commands_test

import (
	"errors"
	"testing"

	"tableorders/internal/core/application/usecases/commands"
	"tableorders/internal/core/domain/model/kernel"
	"tableorders/internal/core/domain/model/order"
	"tableorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAdvanceOrderStatusCommand(t *testing.T) {
	cmd, err := commands.NewAdvanceOrderStatusCommand(kernel.NewUUID(), "Prepared")
	require.NoError(t, err)
	assert.Equal(t, order.Prepared, cmd.Target())

	_, err = commands.NewAdvanceOrderStatusCommand(kernel.UUID{}, "Cooking")
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func newAdvanceMocks(t *testing.T, o *order.Order) (*MockOrderRepository, *MockOrderUoW, *MockOrderUoWFactory) {
	t.Helper()
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
	if o != nil {
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	}
	return repo, uow, factory
}

func TestAdvanceOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := testOrder(t, order.Pending)
	cmd, _ := commands.NewAdvanceOrderStatusCommand(o.ID(), "InPreparation")

	repo, uow, factory := newAdvanceMocks(t, o)
	repo.On("Update", ctx, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewAdvanceOrderStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.InPreparation, o.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	for _, tt := range []struct {
		from   order.Status
		target string
	}{
		{from: order.Pending, target: "Prepared"},
		{from: order.Prepared, target: "InPreparation"},
		{from: order.Delivered, target: "Delivered"},
		{from: order.Delivered, target: "Pending"},
	} {
		t.Run(tt.from.String()+"_to_"+tt.target, func(t *testing.T) {
			ctx := t.Context()
			o := testOrder(t, tt.from)
			cmd, _ := commands.NewAdvanceOrderStatusCommand(o.ID(), tt.target)

			repo, uow, factory := newAdvanceMocks(t, o)

			h := commands.NewAdvanceOrderStatusCommandHandler(factory)
			err := h.Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrIllegalTransition)
			assert.Equal(t, tt.from, o.Status())
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestAdvanceOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewAdvanceOrderStatusCommand(id, "InPreparation")

	repo, _, factory := newAdvanceMocks(t, nil)
	repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id)).Once()

	h := commands.NewAdvanceOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.NotErrorIs(t, err, errs.ErrPersistence)
}

func TestAdvanceOrderStatusCommandHandler_Handle_PersistenceErrors(t *testing.T) {
	t.Run("version conflict", func(t *testing.T) {
		ctx := t.Context()
		o := testOrder(t, order.InPreparation)
		cmd, _ := commands.NewAdvanceOrderStatusCommand(o.ID(), "Prepared")

		repo, uow, factory := newAdvanceMocks(t, o)
		repo.On("Update", ctx, o).Return(errs.NewVersionIsInvalidError("order")).Once()

		h := commands.NewAdvanceOrderStatusCommandHandler(factory)
		err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrPersistence)
		require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("load failure", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, _ := commands.NewAdvanceOrderStatusCommand(id, "Prepared")

		repo, _, factory := newAdvanceMocks(t, nil)
		repo.On("Get", ctx, id).Return(nil, errors.New("timeout")).Once()

		h := commands.NewAdvanceOrderStatusCommandHandler(factory)

		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrPersistence)
	})

	t.Run("commit failure", func(t *testing.T) {
		ctx := t.Context()
		o := testOrder(t, order.Prepared)
		cmd, _ := commands.NewAdvanceOrderStatusCommand(o.ID(), "Delivered")

		repo, uow, factory := newAdvanceMocks(t, o)
		repo.On("Update", ctx, o).Return(nil).Once()
		uow.On("Commit", ctx).Return(errors.New("disk full")).Once()

		h := commands.NewAdvanceOrderStatusCommandHandler(factory)

		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrPersistence)
	})
}
