package upload

import (
	"context"
	"testing"

	"minio-upload/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestProvisioner_Ensure(t *testing.T) {
	t.Run("ExistingIsNoop", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "demo").Return(true, nil)
		p := NewProvisioner(client, true, zap.NewNop())

		for i := 0; i < 3; i++ {
			assert.NoError(t, p.Ensure(context.Background(), "demo"))
		}
		client.AssertNumberOfCalls(t, "BucketExists", 3)
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything)
	})

	t.Run("CreatesMissing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "demo").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "demo").Return(nil)
		p := NewProvisioner(client, true, zap.NewNop())

		assert.NoError(t, p.Ensure(context.Background(), "demo"))
		client.AssertExpectations(t)
	})

	t.Run("MissingWithoutAutoCreate", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "demo").Return(false, nil)
		p := NewProvisioner(client, false, zap.NewNop())

		err := p.Ensure(context.Background(), "demo")
		assert.ErrorIs(t, err, ErrConfiguration)
		assert.Contains(t, err.Error(), "bucket demo does not exist")
	})

	t.Run("CreateFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "demo").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "demo").Return(assert.AnError)
		p := NewProvisioner(client, true, zap.NewNop())

		err := p.Ensure(context.Background(), "demo")
		assert.ErrorIs(t, err, ErrStorage)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
