package vaultsolana

import (
	"errors"
	"net/http"

	"github.com/hashicorp/vault/sdk/logical"

	"github.com/joaquinsoza/vaultsolana/internal/adapters"
	"github.com/joaquinsoza/vaultsolana/internal/credential"
)

var badRequestErrors = []error{
	credential.ErrMissingCredential,
	credential.ErrInvalidKeyLength,
	credential.ErrInvalidKeyMaterial,
	credential.ErrUndecodable,
	adapters.ErrMissingParameter,
	adapters.ErrInvalidParameter,
	adapters.ErrInvalidPayload,
}

// codedError maps resolver and adapter failures to HTTP status codes.
// Anything unrecognised is returned as is and surfaces as a 500.
func codedError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, adapters.ErrUpstream) {
		return logical.CodedError(http.StatusBadGateway, err.Error())
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return logical.CodedError(http.StatusBadRequest, err.Error())
		}
	}
	return err
}
