// Package proto holds the Diary gRPC service definition and the code
// generated from it.
package proto

//go:generate protoc --proto_path=. --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative diary.proto
