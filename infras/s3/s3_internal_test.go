package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestS3_GetObjectNameFromURL(t *testing.T) {
	svc := &s3Impl{
		endpoint:     "https://account.r2.cloudflarestorage.com",
		bucket:       "luna",
		publicDomain: "https://images.luna.ng",
	}

	tests := []struct {
		name   string
		bucket string
		url    string
		want   string
	}{
		{name: "public url", url: "https://images.luna.ng/property/p1/a.jpg", want: "property/p1/a.jpg"},
		{name: "path style url", url: "https://account.r2.cloudflarestorage.com/luna/property/p1/b.png", want: "property/p1/b.png"},
		{name: "other bucket", bucket: "archive", url: "https://account.r2.cloudflarestorage.com/luna/property/p1/b.png", want: ""},
		{name: "foreign host", url: "https://i.ibb.co/kgv6sb2q/guzape.jpg", want: ""},
		{name: "bare domain", url: "https://images.luna.ng/", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.GetObjectNameFromURL(tt.bucket, tt.url))
		})
	}
}

func TestS3_PublicURL(t *testing.T) {
	svc := &s3Impl{publicDomain: "https://images.luna.ng"}

	assert.Equal(t, "https://images.luna.ng/property/p1/a.jpg", svc.publicURL("property/p1/a.jpg"))
	assert.Equal(t, "luna", (&s3Impl{bucket: "luna"}).bucketOrDefault(""))
	assert.Equal(t, "archive", (&s3Impl{bucket: "luna"}).bucketOrDefault("archive"))
}
