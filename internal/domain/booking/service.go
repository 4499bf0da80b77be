package booking

import (
	"context"
	"errors"

	"github.com/hms/hms/internal/domain/appointment"
	"github.com/hms/hms/internal/domain/doctor"
	"github.com/hms/hms/internal/domain/patient"
)

// Outcome messages kept byte-compatible with existing clients.
const (
	msgBooked         = "Appointment booked successfully"
	msgRegisterFailed = "Unable to register patient. Please try again later."
	msgNoDoctor       = "No doctor found"
	msgUnverified     = "Unable to verify patient registration"
)

// PatientRegistry is the slice of the patient service the workflow needs.
type PatientRegistry interface {
	Find(ctx context.Context, name, phone string) (*patient.Patient, error)
	Register(ctx context.Context, p *patient.Patient) error
}

// DoctorDirectory resolves a doctor's identity by exact name.
type DoctorDirectory interface {
	FindIDByName(ctx context.Context, name string) (int, error)
}

// AppointmentLedger records the booked appointment.
type AppointmentLedger interface {
	Insert(ctx context.Context, a *appointment.Appointment) error
}

// Request carries a single booking call.
type Request struct {
	PatientName   string `json:"patient_name"`
	PatientMobile string `json:"patient_mobile"`
	DoctorName    string `json:"doctor_name"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Email         string `json:"email"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	Address       string `json:"address"`
	Notes         string `json:"notes"`
}

// Result is the booking outcome, reported as an ordinary response payload.
// Callers branch on Success, not on HTTP status.
type Result struct {
	Success       bool   `json:"success"`
	Message       string `json:"message,omitempty"`
	Error         string `json:"error,omitempty"`
	AppointmentID int    `json:"appointment_id,omitempty"`
}

type Service struct {
	patients PatientRegistry
	doctors  DoctorDirectory
	ledger   AppointmentLedger
}

func NewService(patients PatientRegistry, doctors DoctorDirectory, ledger AppointmentLedger) *Service {
	return &Service{patients: patients, doctors: doctors, ledger: ledger}
}

// Book runs the booking workflow: resolve the patient (registering on a
// miss), resolve the doctor, insert the appointment. The first failure
// terminates the workflow; no step is retried and nothing is rolled back.
// The patient find-or-create sequence is not transactional: two concurrent
// first-time bookings can both register the same person.
func (s *Service) Book(ctx context.Context, req Request) Result {
	p, err := s.patients.Find(ctx, req.PatientName, req.PatientMobile)
	switch {
	case errors.Is(err, patient.ErrNotFound):
		newPatient := &patient.Patient{
			Name:    req.PatientName,
			Phone:   req.PatientMobile,
			Email:   req.Email,
			Age:     req.Age,
			Gender:  req.Gender,
			Address: req.Address,
		}
		if err := s.patients.Register(ctx, newPatient); err != nil {
			return Result{Message: msgRegisterFailed}
		}
		// The insert does not report the generated id; read it back.
		p, err = s.patients.Find(ctx, req.PatientName, req.PatientMobile)
		if errors.Is(err, patient.ErrNotFound) {
			// Registration reported success but the row is not visible.
			return Result{Message: msgUnverified}
		}
		if err != nil {
			return Result{Error: err.Error()}
		}
	case err != nil:
		return Result{Error: err.Error()}
	}

	doctorID, err := s.doctors.FindIDByName(ctx, req.DoctorName)
	if errors.Is(err, doctor.ErrNotFound) {
		return Result{Message: msgNoDoctor}
	}
	if err != nil {
		return Result{Error: err.Error()}
	}

	appt := &appointment.Appointment{
		PatientID:     p.ID,
		DoctorID:      doctorID,
		PatientMobile: req.PatientMobile,
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
	}
	if err := s.ledger.Insert(ctx, appt); err != nil {
		return Result{Error: err.Error()}
	}

	return Result{Success: true, Message: msgBooked, AppointmentID: appt.ID}
}
