package status

import (
	"context"

	"github.com/oshokin/panic-button/internal/domain/alert"
	pb "github.com/oshokin/panic-button/internal/pb/v1"
	statusservice "github.com/oshokin/panic-button/internal/service/status"
)

// Service is the application API the transport delegates to.
type Service interface {
	ChangeStatus(ctx context.Context, identity *alert.Identity, trigger statusservice.Trigger) (*alert.Result, error)
	GetStatus(ctx context.Context, identity *alert.Identity) (*alert.UserStatus, error)
	ListContacts(ctx context.Context, identity *alert.Identity) ([]alert.Contact, error)
	AddContact(ctx context.Context, identity *alert.Identity, name, phone string) (*alert.Contact, error)
}

// Server implements pb.StatusServiceServer on top of the status service.
type Server struct {
	pb.UnimplementedStatusServiceServer

	service Service
}

// NewServer creates a gRPC server implementation.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// ChangeStatus declares panic or safe and notifies the caller's contacts.
func (s *Server) ChangeStatus(ctx context.Context, req *pb.ChangeStatusRequest) (*pb.ChangeStatusResponse, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	trigger, err := decodeTrigger(req)
	if err != nil {
		return nil, toStatusError(err)
	}

	result, err := s.service.ChangeStatus(ctx, identity, *trigger)
	if err != nil {
		return nil, toStatusError(err)
	}

	return newChangeStatusResponse(result), nil
}

// GetStatus returns the caller's stored status.
func (s *Server) GetStatus(ctx context.Context, _ *pb.GetStatusRequest) (*pb.GetStatusResponse, error) {
	userStatus, err := s.service.GetStatus(ctx, IdentityFromContext(ctx))
	if err != nil {
		return nil, toStatusError(err)
	}

	return newStatusResponse(userStatus), nil
}

// ListContacts returns the caller's contacts.
func (s *Server) ListContacts(ctx context.Context, _ *pb.ListContactsRequest) (*pb.ListContactsResponse, error) {
	contacts, err := s.service.ListContacts(ctx, IdentityFromContext(ctx))
	if err != nil {
		return nil, toStatusError(err)
	}

	response := &pb.ListContactsResponse{
		Contacts: make([]*pb.Contact, 0, len(contacts)),
	}

	for i := range contacts {
		response.Contacts = append(response.Contacts, newContact(&contacts[i]))
	}

	return response, nil
}

// AddContact appends a contact to the caller's list.
func (s *Server) AddContact(ctx context.Context, req *pb.AddContactRequest) (*pb.Contact, error) {
	identity, err := requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	contact, err := s.service.AddContact(ctx, identity, req.GetName(), req.GetPhone())
	if err != nil {
		return nil, toStatusError(err)
	}

	return newContact(contact), nil
}

// requireIdentity fails with Unauthenticated before any payload is looked at.
func requireIdentity(ctx context.Context) (*alert.Identity, error) {
	identity := IdentityFromContext(ctx)
	if !identity.Valid() {
		return nil, toStatusError(alert.ErrUnauthenticated)
	}

	return identity, nil
}

// decodeTrigger validates a ChangeStatus request into a service trigger.
func decodeTrigger(req *pb.ChangeStatusRequest) (*statusservice.Trigger, error) {
	kind, err := alert.ParseStatus(req.GetKind())
	if err != nil {
		return nil, err
	}

	location, err := alert.LocationFromOptional(req.Latitude, req.Longitude)
	if err != nil {
		return nil, err
	}

	return &statusservice.Trigger{
		Status:   kind,
		Location: location,
	}, nil
}
