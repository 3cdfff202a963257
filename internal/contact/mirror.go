package contact

import (
	"context"

	"go.uber.org/zap"
)

// MirrorStore saves to Primary and copies each saved message to Mirror.
// Only a Primary failure fails the save.
type MirrorStore struct {
	Primary Store
	Mirror  Store
	Log     *zap.Logger
}

func (m *MirrorStore) Save(ctx context.Context, f Form) (string, error) {
	id, err := m.Primary.Save(ctx, f)
	if err != nil {
		return "", err
	}
	if _, merr := m.Mirror.Save(ctx, f); merr != nil && m.Log != nil {
		m.Log.Warn("failed to mirror contact message", zap.String("id", id), zap.Error(merr))
	}
	return id, nil
}
