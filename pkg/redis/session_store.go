package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"shop-admin.backend/pkg/crypto"
)

const sessionKeyPrefix = "admin_session:"

// SessionData holds the data stored in an admin session
type SessionData struct {
	UserID       uuid.UUID `json:"userId"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SessionStore keeps encrypted admin sessions in Redis
type SessionStore struct {
	cipher *crypto.Cipher
}

var (
	setSessionValue    = Set
	getSessionValue    = Get
	delSessionValue    = func(ctx context.Context, key string) error { return Del(ctx, key) }
	marshalSessionJSON = json.Marshal
)

// NewSessionStore creates a new session store
func NewSessionStore(encryptionKeyHex string) (*SessionStore, error) {
	c, err := crypto.NewCipher(encryptionKeyHex)
	if err != nil {
		return nil, err
	}
	return &SessionStore{cipher: c}, nil
}

// CreateSession stores encrypted session data in Redis
func (s *SessionStore) CreateSession(ctx context.Context, sessionID string, data *SessionData, expiration time.Duration) error {
	jsonData, err := marshalSessionJSON(data)
	if err != nil {
		return err
	}

	encrypted, err := s.cipher.Encrypt(jsonData)
	if err != nil {
		return err
	}

	return setSessionValue(ctx, sessionKeyPrefix+sessionID, encrypted, expiration)
}

// GetSession retrieves and decrypts session data from Redis
func (s *SessionStore) GetSession(ctx context.Context, sessionID string) (*SessionData, error) {
	encrypted, err := getSessionValue(ctx, sessionKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}

	decrypted, err := s.cipher.Decrypt(encrypted)
	if err != nil {
		return nil, err
	}

	var data SessionData
	if err := json.Unmarshal(decrypted, &data); err != nil {
		return nil, err
	}

	return &data, nil
}

// DeleteSession removes a session from Redis
func (s *SessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	return delSessionValue(ctx, sessionKeyPrefix+sessionID)
}
