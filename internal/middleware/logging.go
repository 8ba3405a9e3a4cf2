package middleware

import (
	"context"
	"log"
	"time"

	"google.golang.org/grpc"
)

// LoggingInterceptor logs incoming unary requests
func LoggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()

	// Call the handler
	resp, err := handler(ctx, req)
	logCall(ctx, info.FullMethod, time.Since(start), err)
	return resp, err
}

// StreamLoggingInterceptor logs streaming requests once they finish
func StreamLoggingInterceptor(srv interface{}, stream grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	start := time.Now()
	err := handler(srv, stream)
	logCall(stream.Context(), info.FullMethod, time.Since(start), err)
	return err
}

func logCall(ctx context.Context, method string, duration time.Duration, err error) {
	// Get client info for logging
	clientInfo := GetClientInfoFromContext(ctx)

	// Log the request
	logLevel := "INFO"
	if err != nil {
		logLevel = "ERROR"
	}
	log.Printf("[%s] %s completed in %v (user: %s, ip: %s)",
		logLevel, method, duration, clientInfo.UserID, clientInfo.IPAddress)
	if err != nil {
		log.Printf("[ERROR] %s error: %v", method, err)
	}
}
