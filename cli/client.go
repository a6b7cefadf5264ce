package cli

import (
	"crypto/tls"
	"log"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	pb "merkletree/api/tree"
)

var apiClient pb.TreeClient

// Client news or returns a tree client
func Client() pb.TreeClient {
	if apiClient == nil {
		var err error
		var conn *grpc.ClientConn

		if secureConn {
			conn, err = grpc.Dial(endpoint, grpc.WithTransportCredentials(credentials.NewTLS(&tls.Config{})))
			if err != nil {
				log.Fatalf("failed to establish connect(TLS) with %s: %v", endpoint, err)
			}
		} else {
			conn, err = grpc.Dial(endpoint, grpc.WithInsecure())
			if err != nil {
				log.Fatalf("failed to establish insecure connect with %s: %v", endpoint, err)
			}
		}

		apiClient = pb.NewTreeClient(conn)
	}

	return apiClient
}
