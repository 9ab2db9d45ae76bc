package images

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	puts    map[string]string
	types   map[string]string
	deleted []string
	failPut bool
}

func newFakeS3() *fakeS3 {
	return &fakeS3{puts: map[string]string{}, types: map[string]string{}}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.failPut {
		return nil, errors.New("access denied")
	}
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.puts[aws.ToString(in.Key)] = string(b)
	f.types[aws.ToString(in.Key)] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = append(f.deleted, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestObjectKey(t *testing.T) {
	key := ObjectKey(42, "Front Door.JPG")
	assert.True(t, strings.HasPrefix(key, "properties/42/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.NotEqual(t, key, ObjectKey(42, "Front Door.JPG"))
}

func TestUploadAndDelete(t *testing.T) {
	fake := newFakeS3()
	store := NewWithClient(fake, Config{Bucket: "renthub-images", Region: "eu-west-1"})

	key, url, err := store.Upload(context.Background(), 7, "kitchen.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", fake.puts[key])
	assert.Equal(t, "image/png", fake.types[key])
	assert.Equal(t, "https://renthub-images.s3.eu-west-1.amazonaws.com/"+key, url)

	require.NoError(t, store.Delete(context.Background(), key))
	assert.Equal(t, []string{key}, fake.deleted)
}

func TestUploadUsesPublicBaseURL(t *testing.T) {
	store := NewWithClient(newFakeS3(), Config{Bucket: "b", PublicBaseURL: "https://cdn.renthub.example/"})
	key, url, err := store.Upload(context.Background(), 1, "a.webp", "image/webp", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.renthub.example/"+key, url)
}

func TestUploadFailure(t *testing.T) {
	fake := newFakeS3()
	fake.failPut = true
	store := NewWithClient(fake, Config{Bucket: "b", Region: "us-east-1"})
	_, _, err := store.Upload(context.Background(), 1, "a.png", "image/png", strings.NewReader("x"))
	assert.ErrorContains(t, err, "access denied")
}
