// File: services/appointment/cancel.go
package appointment

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"agendly/models"
	"agendly/utils"
)

// Cancel removes an appointment. A client may only cancel their own booking;
// an establishment may cancel anything on its own agenda. When the normal
// delete fails the raw filtered delete runs once as a fallback.
func (s *DefaultAppointmentService) Cancel(ctx context.Context, appointmentID, actorRole, actorProfileID string) error {
	appt, err := s.Repo.GetByID(ctx, appointmentID)
	if err != nil {
		return fmt.Errorf("failed to fetch appointment %s: %w", appointmentID, err)
	}

	switch actorRole {
	case models.RoleClient:
		if appt.Client == nil || appt.Client.ID != actorProfileID {
			return fmt.Errorf("appointment %s does not belong to client %s", appointmentID, actorProfileID)
		}
	case models.RoleEstablishment:
		if appt.Establishment == nil || appt.Establishment.ID != actorProfileID {
			return fmt.Errorf("appointment %s does not belong to establishment %s", appointmentID, actorProfileID)
		}
	default:
		return fmt.Errorf("unknown role %q", actorRole)
	}

	if err := s.Repo.Delete(ctx, appointmentID); err != nil {
		utils.GetLogger().Warn("Delete failed, retrying via direct path",
			zap.String("appointmentId", appointmentID),
			zap.Error(err))
		if err := s.Repo.DeleteDirect(ctx, appointmentID); err != nil {
			return fmt.Errorf("failed to cancel appointment %s: %w", appointmentID, err)
		}
	}
	return nil
}
