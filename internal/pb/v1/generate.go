// Package pb holds the generated panicbutton.v1 protobuf and gRPC code.
package pb

//go:generate protoc -I ../../../api --go_out=. --go_opt=module=github.com/oshokin/panic-button/internal/pb/v1 --go-grpc_out=. --go-grpc_opt=module=github.com/oshokin/panic-button/internal/pb/v1 panicbutton/v1/status.proto
