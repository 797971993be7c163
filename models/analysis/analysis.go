package analysis

import (
	"time"

	"github.com/google/uuid"
)

type State string

const (
	Queued  State = "Queued"
	Running State = "Running"
	Done    State = "Done"
	Error   State = "Error"
)

type AnalysisRequest struct {
	Id           uuid.UUID `json:"id"`
	FamilyId     string    `json:"familyId"`
	Filename     string    `json:"filename"`
	State        State     `json:"state"`
	Message      string    `json:"message"`
	VariantCount int       `json:"variantCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type AnalysisResponseDTO struct {
	Id           uuid.UUID `json:"id"`
	FamilyId     string    `json:"familyId"`
	Filename     string    `json:"filename"`
	State        State     `json:"state"`
	Message      string    `json:"message"`
	VariantCount int       `json:"variantCount"`
	UpdatedAt    string    `json:"updatedAt"`
}

func (r *AnalysisRequest) ToResponseDTO() AnalysisResponseDTO {
	return AnalysisResponseDTO{
		Id:           r.Id,
		FamilyId:     r.FamilyId,
		Filename:     r.Filename,
		State:        r.State,
		Message:      r.Message,
		VariantCount: r.VariantCount,
		UpdatedAt:    r.UpdatedAt.Format(time.RFC3339),
	}
}

func (r *AnalysisRequest) IsFinished() bool {
	return r.State == Done || r.State == Error
}
