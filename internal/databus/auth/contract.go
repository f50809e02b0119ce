package auth

import "context"

//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go

type SessionHub interface {
	SignedIn(ctx context.Context, participantID string) error
	SignedOut(participantID string)
}
