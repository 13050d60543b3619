package service

import (
	"context"
	"fmt"

	"consentadmin/internal/consent/model"
	"consentadmin/internal/consent/registry"
	"consentadmin/internal/consent/repository"
	"consentadmin/internal/consent/secret"
	"consentadmin/internal/consent/util"

	"go.mongodb.org/mongo-driver/bson"
)

// CredentialService keeps passwords encrypted in the store and plain in
// memory.
type CredentialService struct {
	*Resource[model.Credential, model.CredentialPatch, *model.Credential]
	Cipher secret.Cipher
}

func NewCredentialService(entity *registry.Entity, store repository.Store, listLimit int64, cipher secret.Cipher) *CredentialService {
	s := &CredentialService{
		Resource: NewResource[model.Credential, model.CredentialPatch](entity, store, listLimit),
		Cipher:   cipher,
	}
	s.Hooks = Hooks[model.Credential]{
		BeforeInsert: func(doc *model.Credential) error {
			enc, err := s.Cipher.Encrypt(doc.Password)
			if err != nil {
				return fmt.Errorf("encrypt password: %w", err)
			}
			doc.Password = enc
			return nil
		},
		AfterLoad: func(doc *model.Credential) error {
			plain, err := s.Cipher.Decrypt(doc.Password)
			if err != nil {
				// One record written under another key must not hide the rest.
				util.GetLogger().Warn("credential password unreadable",
					"id", doc.ID.Hex(),
					"error", err,
				)
				doc.Password = ""
				doc.Unreadable = true
				return nil
			}
			doc.Password = plain
			return nil
		},
		BeforeSet: func(set bson.M) error {
			pw, ok := set["password"].(string)
			if !ok {
				return nil
			}
			enc, err := s.Cipher.Encrypt(pw)
			if err != nil {
				return fmt.Errorf("encrypt password: %w", err)
			}
			set["password"] = enc
			return nil
		},
	}
	return s
}

// Rotate replaces the stored password.
func (s *CredentialService) Rotate(ctx context.Context, id string, req model.RotateCredentialReq) error {
	if err := req.Validate(); err != nil {
		return badRequest(err)
	}
	return s.Patch(ctx, id, bson.M{"password": req.Password})
}

// Attach binds the credentials to a service.
func (s *CredentialService) Attach(ctx context.Context, id string, req model.AttachCredentialReq) error {
	if err := req.Validate(); err != nil {
		return badRequest(err)
	}
	return s.Patch(ctx, id, bson.M{"service": req.Service})
}

// Encrypt returns the ciphertext without storing anything.
func (s *CredentialService) Encrypt(req model.EncryptReq) (*model.EncryptResp, error) {
	if err := req.Validate(); err != nil {
		return nil, badRequest(err)
	}
	enc, err := s.Cipher.Encrypt(req.Password)
	if err != nil {
		return nil, fmt.Errorf("encrypt password: %w", err)
	}
	return &model.EncryptResp{EncryptedPassword: enc}, nil
}
