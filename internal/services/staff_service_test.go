package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rajkrish0608/WorkProof/internal/models"
	"github.com/rajkrish0608/WorkProof/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingEmail struct{ calls int }

func (f *failingEmail) SendEmail(ctx context.Context, to, subject, body string) error {
	f.calls++
	return errors.New("smtp down")
}

func TestStaffService_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	accounts := repository.NewAccountRepository(db)
	email := &failingEmail{}
	svc := NewStaffService(accounts, email, zap.NewNop())

	owner := &models.Account{Email: "owner@example.com", PasswordHash: "x", Name: "Owner", Role: models.RoleOwner}
	require.NoError(t, accounts.Create(ctx, owner))

	staff, err := svc.Create(ctx, owner.ID, CreateStaffInput{Name: "Meera", Email: "meera@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStaff, staff.Role)
	assert.Equal(t, owner.ID, staff.OrgID())
	assert.Equal(t, 1, email.calls)

	_, err = svc.Create(ctx, owner.ID, CreateStaffInput{Name: "Dup", Email: "MEERA@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	newName := "Meera S"
	updated, err := svc.Update(ctx, staff.ID, owner.ID, UpdateStaffInput{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)

	_, err = svc.Update(ctx, staff.ID, "someone-else", UpdateStaffInput{Name: &newName})
	assert.ErrorIs(t, err, ErrStaffNotFound)

	list, err := svc.List(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, staff.ID, owner.ID))
	assert.ErrorIs(t, svc.Delete(ctx, staff.ID, owner.ID), ErrStaffNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, owner.ID, owner.ID), ErrStaffNotFound)
}
