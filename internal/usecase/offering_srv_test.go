package usecase

import (
	"context"
	"testing"

	"hunarhub/internal/data/entity"
	"hunarhub/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateService(t *testing.T) {
	repo, _, _, _ := newFakeRepository()
	svc := NewOfferingService(repo, zap.NewNop())

	ownerID := uuid.New()
	resp, err := svc.CreateService(context.Background(), ownerID.String(), &request.CreateServiceRequest{
		Name:       "Tailoring",
		PriceRange: strPtr("100-500"),
	})
	require.NoError(t, err)

	services := repo.Service.(*fakeServiceRepo).services
	require.Len(t, services, 1)
	assert.Equal(t, resp.ServiceID, services[0].ID.String())
	assert.Equal(t, ownerID, services[0].EntrepreneurID)
}

func TestCreateServiceRequest(t *testing.T) {
	repo, _, _, _ := newFakeRepository()
	svc := NewOfferingService(repo, zap.NewNop())

	ownerID := uuid.New()
	service := &entity.Service{
		ID:             uuid.New(),
		EntrepreneurID: ownerID,
		Name:           "Tailoring",
	}
	repo.Service.(*fakeServiceRepo).services = append(repo.Service.(*fakeServiceRepo).services, service)

	customerID := uuid.New()
	resp, err := svc.CreateServiceRequest(context.Background(), customerID.String(), &request.CreateServiceRequestRequest{
		EntrepreneurID: ownerID.String(),
		ServiceID:      service.ID.String(),
		Details:        strPtr("Two kurtas"),
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	requests := repo.ServiceRequest.(*fakeServiceRequestRepo).requests
	require.Len(t, requests, 1)
	assert.Equal(t, entity.ServiceRequestStatusPending, requests[0].Status)
	assert.Equal(t, customerID, requests[0].CustomerID)
	assert.False(t, requests[0].RequestDate.IsZero())
}

func TestCreateServiceRequestUnknownService(t *testing.T) {
	repo, _, _, _ := newFakeRepository()
	svc := NewOfferingService(repo, zap.NewNop())

	_, err := svc.CreateServiceRequest(context.Background(), uuid.NewString(), &request.CreateServiceRequestRequest{
		EntrepreneurID: uuid.NewString(),
		ServiceID:      uuid.NewString(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Empty(t, repo.ServiceRequest.(*fakeServiceRequestRepo).requests)
}

func TestUpdateServiceRequestStatusOwnership(t *testing.T) {
	repo, _, _, _ := newFakeRepository()
	svc := NewOfferingService(repo, zap.NewNop())

	ownerID := uuid.New()
	sr := &entity.ServiceRequest{
		ID:             uuid.New(),
		CustomerID:     uuid.New(),
		EntrepreneurID: ownerID,
		ServiceID:      uuid.New(),
		Status:         entity.ServiceRequestStatusPending,
	}
	requests := repo.ServiceRequest.(*fakeServiceRequestRepo)
	requests.requests = append(requests.requests, sr)

	// Non-owner gets a 404-shaped error and the row stays pending
	err := svc.UpdateServiceRequestStatus(context.Background(), uuid.NewString(), sr.ID.String(), &request.UpdateStatusRequest{
		Status: "accepted",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Equal(t, entity.ServiceRequestStatusPending, sr.Status)

	// Owner succeeds
	err = svc.UpdateServiceRequestStatus(context.Background(), ownerID.String(), sr.ID.String(), &request.UpdateStatusRequest{
		Status: "accepted",
	})
	require.NoError(t, err)
	assert.Equal(t, "accepted", sr.Status)
}

func TestGetMyServiceRequestsRoleShaping(t *testing.T) {
	repo, _, _, _ := newFakeRepository()
	svc := NewOfferingService(repo, zap.NewNop())

	customerID := uuid.New()
	ownerID := uuid.New()
	sr := &entity.ServiceRequest{
		ID:             uuid.New(),
		CustomerID:     customerID,
		EntrepreneurID: ownerID,
		ServiceID:      uuid.New(),
		Status:         entity.ServiceRequestStatusPending,
	}
	requests := repo.ServiceRequest.(*fakeServiceRequestRepo)
	requests.requests = append(requests.requests, sr)

	asCustomer, err := svc.GetMyServiceRequests(context.Background(), customerID.String(), string(entity.RoleCustomer))
	require.NoError(t, err)
	require.Len(t, asCustomer, 1)
	assert.NotNil(t, asCustomer[0].BusinessName)
	assert.Nil(t, asCustomer[0].CustomerName)

	asOwner, err := svc.GetMyServiceRequests(context.Background(), ownerID.String(), string(entity.RoleEntrepreneur))
	require.NoError(t, err)
	require.Len(t, asOwner, 1)
	assert.NotNil(t, asOwner[0].CustomerName)
	assert.Nil(t, asOwner[0].BusinessName)
}
