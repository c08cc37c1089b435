package routes

import (
	"context"

	"appointment-scheduler/cmd/internal/service"
	"appointment-scheduler/cmd/internal/utils/apierror"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const ScheduleAppointmentTool = "schedule_appointment"

type AppointmentService interface {
	ScheduleAppointment(ctx context.Context, req *service.AppointmentRequest) (*service.AppointmentResponse, apierror.ErrorResponse)
}

type DefaultAppointmentRoute struct {
	AppointmentService AppointmentService
}

func NewAppointmentDefault(apptService AppointmentService) *DefaultAppointmentRoute {
	return &DefaultAppointmentRoute{AppointmentService: apptService}
}

// Register exposes the appointment tools on s.
func (a *DefaultAppointmentRoute) Register(s *server.MCPServer) {
	s.AddTool(scheduleAppointmentTool(), a.ScheduleAppointment)
}

// ScheduleAppointment always answers with a text result. Failures are
// reported in-band with isError set, never as protocol errors.
func (a *DefaultAppointmentRoute) ScheduleAppointment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	var req service.AppointmentRequest
	fields := []struct {
		key string
		dst *string
	}{
		{"name", &req.Name},
		{"identification_number", &req.IdentificationNumber},
		{"phone", &req.Phone},
		{"date", &req.Date},
	}
	for _, f := range fields {
		value, ok := stringArg(args, f.key)
		if !ok {
			return mcp.NewToolResultError(apierror.NewNotAStringError(f.key).Error()), nil
		}
		*f.dst = value
	}

	appt, apierr := a.AppointmentService.ScheduleAppointment(ctx, &req)
	if apierr != nil {
		return mcp.NewToolResultError(apierr.Error()), nil
	}
	return mcp.NewToolResultText(appt.Message()), nil
}

// Absent and null arguments read as empty strings.
func stringArg(args map[string]any, key string) (string, bool) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return "", true
	}
	s, ok := raw.(string)
	return s, ok
}

func scheduleAppointmentTool() mcp.Tool {
	return mcp.NewTool(ScheduleAppointmentTool,
		mcp.WithDescription("Schedule a new appointment by inserting a record into the database. Returns a success message with the appointment details or an error message."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Full name of the person scheduling the appointment")),
		mcp.WithString("identification_number", mcp.Required(), mcp.Description("Identification number (e.g., ID card, passport)")),
		mcp.WithString("phone", mcp.Required(), mcp.Description("Phone number")),
		mcp.WithString("date", mcp.Required(), mcp.Description("Appointment date and time in ISO format (YYYY-MM-DDTHH:MM:SS)")),
	)
}
