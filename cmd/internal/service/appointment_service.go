package service

import (
	"context"
	"fmt"

	"appointment-scheduler/cmd/internal/domain/entity"
	"appointment-scheduler/cmd/internal/utils"
	"appointment-scheduler/cmd/internal/utils/apierror"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
}

// AppointmentRequest is the raw tool input. No format rules apply to the
// identification number or phone beyond their column lengths.
type AppointmentRequest struct {
	Name                 string `json:"name" validate:"required,max=255"`
	IdentificationNumber string `json:"identification_number" validate:"required,max=50"`
	Phone                string `json:"phone" validate:"required,max=20"`
	Date                 string `json:"date" validate:"required,iso8601"`
}

type AppointmentResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}

func (r *AppointmentResponse) Message() string {
	return fmt.Sprintf("Success: Appointment scheduled for %s on %s (ID: %d)", r.Name, r.Date, r.ID)
}

type DefaultAppointmentService struct {
	AppointmentRepo AppointmentRepository
	Validate        *validator.Validate
}

func NewAppointmentService(apptRepo AppointmentRepository, validate *validator.Validate) *DefaultAppointmentService {
	return &DefaultAppointmentService{AppointmentRepo: apptRepo, Validate: validate}
}

// ScheduleAppointment validates the request and stores one appointment.
// Exactly one of the results is non-nil.
func (a *DefaultAppointmentService) ScheduleAppointment(ctx context.Context, req *AppointmentRequest) (resp *AppointmentResponse, apierr apierror.ErrorResponse) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("panic while scheduling appointment: %v", r)
			resp, apierr = nil, apierror.NewUnexpectedError(fmt.Errorf("%v", r))
		}
	}()

	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	date, err := utils.ParseIso8601(req.Date)
	if err != nil {
		return nil, apierror.InvalidDateError
	}

	appointment := &entity.Appointment{
		Name:                 req.Name,
		IdentificationNumber: req.IdentificationNumber,
		Phone:                req.Phone,
		Date:                 date,
	}

	err = a.AppointmentRepo.Create(ctx, appointment)
	if err != nil {
		log.Errorf("failed to save appointment for %s: %v", req.Name, err)
		return nil, apierror.NewStorageError(err)
	}

	log.Debugf("appointment %d scheduled for %s", appointment.ID, utils.FormatDisplay(date))
	return toAppointmentResponse(appointment), nil
}

func toAppointmentResponse(appt *entity.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:   appt.ID,
		Name: appt.Name,
		Date: utils.FormatDisplay(appt.Date),
	}
}
