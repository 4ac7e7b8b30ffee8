package usecases

import (
	"context"

	"partner-booking-service/internal/module/partner/models/request"
	"partner-booking-service/internal/module/partner/models/response"
	"partner-booking-service/internal/module/partner/repositories"
	"partner-booking-service/internal/pkg/log"
)

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
}

type Usecase interface {
	AssignBestPartner(ctx context.Context, payload *request.AssignPartner) (*response.PartnerAssignment, error)
}

func New(repo repositories.Repositories, log log.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

// AssignBestPartner returns nil when no eligible partner exists; the handler
// decides how to surface that.
func (u *usecase) AssignBestPartner(ctx context.Context, payload *request.AssignPartner) (*response.PartnerAssignment, error) {
	return u.repo.AssignBestPartner(ctx, payload.City, payload.SlotStart)
}
