package status

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/oshokin/panic-button/internal/domain/alert"
	pb "github.com/oshokin/panic-button/internal/pb/v1"
)

// newChangeStatusResponse converts a service result.
func newChangeStatusResponse(result *alert.Result) *pb.ChangeStatusResponse {
	response := &pb.ChangeStatusResponse{
		Kind:          result.Status.String(),
		StatusWritten: result.StatusWritten,
		Notified:      result.Notified,
		MapLink:       result.MapLink,
		Summary:       result.Summary(),
	}

	if result.Event != nil {
		response.EventId = result.Event.ID
	}

	for _, failed := range result.Failed {
		response.Failed = append(response.Failed, &pb.FailedDelivery{
			Name:  failed.Name,
			Error: failed.Reason,
		})
	}

	return response
}

// newStatusResponse converts a stored status.
// A never-written status carries no updated_at.
func newStatusResponse(userStatus *alert.UserStatus) *pb.GetStatusResponse {
	response := &pb.GetStatusResponse{
		Status: userStatus.Status.String(),
	}

	if userStatus.Location != nil {
		latitude, longitude := userStatus.Location.Latitude, userStatus.Location.Longitude
		response.Latitude = &latitude
		response.Longitude = &longitude
	}

	if !userStatus.UpdatedAt.IsZero() {
		response.UpdatedAt = timestamppb.New(userStatus.UpdatedAt)
	}

	return response
}

func newContact(contact *alert.Contact) *pb.Contact {
	return &pb.Contact{
		Id:    contact.ID,
		Name:  contact.Name,
		Phone: contact.Phone,
	}
}
