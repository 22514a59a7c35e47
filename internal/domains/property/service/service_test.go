package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"luna/config"
	"luna/infras/otel/mocks"
	s3Mocks "luna/infras/s3/mocks"
	propertyMocks "luna/internal/domains/property/mocks"
	"luna/internal/domains/property/model"
	"luna/internal/domains/property/model/dto"
	"luna/internal/domains/property/service"
	cacheMocks "luna/shared/cache/mocks"
	"luna/shared/constant"
	gDto "luna/shared/dto"
	"luna/shared/failure"
	gModel "luna/shared/model"
	"luna/shared/timezone"
)

type fixture struct {
	repo  *propertyMocks.MockProperty
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
	svc   service.Property
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() {
		time.Sleep(10 * time.Millisecond)
		ctrl.Finish()
	})

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Checkout.FeaturedLimit = 6
	cfg.External.S3.BucketName = "luna"

	f := fixture{
		repo:  propertyMocks.NewMockProperty(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}
	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel(), f.s3)

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func sampleProperty() model.Property {
	tagline := "Waterfront calm"
	host := "Adaeze"

	return model.Property{
		ID:            "prop-1",
		Name:          "Lekki Waterfront Apartment",
		Tagline:       &tagline,
		Description:   "Two bedroom apartment with a lagoon view",
		Location:      "Lagos",
		Address:       "12 Admiralty Way, Lekki",
		PricePerNight: 45000,
		MaxGuests:     4,
		Bedrooms:      2,
		Bathrooms:     2,
		Amenities:     pq.StringArray{"WiFi", "Pool"},
		Images:        pq.StringArray{"https://cdn.example.com/property/prop-1/a.jpg"},
		HostName:      &host,
		Type:          model.TypeApartment,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

func TestPropertyService_Create(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f fixture)
		wantErr bool
	}{
		{
			name: "successful creation",
			setup: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p model.Property) error {
					assert.Equal(t, "ops", p.CreatedBy)
					assert.NotEmpty(t, p.ID)

					return nil
				})
			},
		},
		{
			name: "repository error",
			setup: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyActor, "ops")
			res, err := f.svc.Create(ctx, dto.CreatePropertyRequest{
				Name:        "Lekki Waterfront Apartment",
				Description: "Two bedroom apartment",
				Location:    "Lagos",
				Address:     "Lekki",
				Type:        model.TypeApartment,
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Lekki Waterfront Apartment", res.Name)
			assert.Empty(t, res.Images)
		})
	}
}

func TestPropertyService_GetAll(t *testing.T) {
	t.Run("cache miss loads from repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Property{sampleProperty()}, nil)

		res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, 11, res.TotalData)
		assert.Equal(t, 2, res.TotalPage)
		assert.Len(t, res.Properties, 1)
		assert.Equal(t, "Waterfront calm", res.Properties[0].Tagline)
		assert.Equal(t, "Adaeze", res.Properties[0].Host.Name)
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ string, value any) error {
			res, ok := value.(*dto.GetPropertiesResponse)
			assert.True(t, ok)
			res.TotalData = 3

			return nil
		})

		res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Equal(t, 3, res.TotalData)
	})

	t.Run("count error", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))

		_, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		assert.Error(t, err)
	})
}

func TestPropertyService_Featured(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Property, error) {
			assert.Equal(t, 6, params.Limit)
			assert.Equal(t, gDto.SortDirAsc, params.SortDir)

			return []model.Property{sampleProperty()}, nil
		})

	res, err := f.svc.Featured(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestPropertyService_Get(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f fixture)
		wantCode int
		wantErr  bool
	}{
		{
			name: "found",
			setup: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "property:get:prop-1", gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleProperty(), nil)
			},
		},
		{
			name: "not found",
			setup: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Property{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "repository error",
			setup: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Property{}, errors.New("database error"))
			},
			wantErr:  true,
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			res, err := f.svc.Get(context.Background(), "prop-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "prop-1", res.ID)
		})
	}
}

func TestPropertyService_Update(t *testing.T) {
	name := "Renamed Loft"

	t.Run("empty request", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Update(context.Background(), dto.UpdatePropertyRequest{}, "prop-1")

		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Update(context.Background(), dto.UpdatePropertyRequest{Name: &name}, "prop-1")

		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("updates name", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, &name, fields[model.FieldName])

				return nil
			})

		err := f.svc.Update(context.Background(), dto.UpdatePropertyRequest{Name: &name}, "prop-1")

		assert.NoError(t, err)
	})
}

func TestPropertyService_Delete(t *testing.T) {
	t.Run("removes stored images", func(t *testing.T) {
		f := newFixture(t)
		property := sampleProperty()

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(property, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.s3.EXPECT().GetObjectNameFromURL("luna", property.Images[0]).Return("property/prop-1/a.jpg")
		f.s3.EXPECT().DeleteFile(gomock.Any(), "luna", constant.Empty, "property/prop-1/a.jpg").Return(nil)

		err := f.svc.Delete(context.Background(), "prop-1")

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Property{}, nil)

		err := f.svc.Delete(context.Background(), "missing")

		assert.Equal(t, 404, failure.GetCode(err))
	})
}

type nopFile struct {
	*strings.Reader
}

func (nopFile) Close() error { return nil }

func uploadRequest() dto.UploadImageRequest {
	header := &multipart.FileHeader{Filename: "pool.jpg", Header: textproto.MIMEHeader{}}
	header.Header.Set(constant.RequestHeaderContentType, "image/jpeg")

	return dto.UploadImageRequest{
		Image:     header,
		ImageFile: nopFile{strings.NewReader("jpeg")},
	}
}

func TestPropertyService_UploadImage(t *testing.T) {
	url := "https://cdn.example.com/property/prop-1/new.jpg"

	t.Run("appends uploaded url", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.s3.EXPECT().UploadFile(gomock.Any(), "luna", "property/prop-1", gomock.Any(), gomock.Any(), gomock.Any()).Return(url, nil)
		f.repo.EXPECT().AppendImages(gomock.Any(), "prop-1", gomock.Any(), []string{url}).Return([]string{"a", url}, nil)

		res, err := f.svc.UploadImage(context.Background(), "prop-1", uploadRequest())

		assert.NoError(t, err)
		assert.Equal(t, url, res.URL)
		assert.True(t, strings.HasSuffix(res.FileName, ".jpg"))
		assert.Equal(t, []string{"a", url}, res.Images)
	})

	t.Run("rolls back upload when append fails", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(url, nil)
		f.repo.EXPECT().AppendImages(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
		f.s3.EXPECT().DeleteFile(gomock.Any(), "luna", "property/prop-1", gomock.Any()).Return(nil)

		_, err := f.svc.UploadImage(context.Background(), "prop-1", uploadRequest())

		assert.Error(t, err)
	})

	t.Run("unknown property", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.UploadImage(context.Background(), "missing", uploadRequest())

		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestPropertyService_DeleteImages(t *testing.T) {
	f := newFixture(t)
	removed := "https://cdn.example.com/property/prop-1/a.jpg"

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.repo.EXPECT().RemoveImages(gomock.Any(), "prop-1", gomock.Any(), []string{removed}).Return([]string{}, nil)
	f.s3.EXPECT().GetObjectNameFromURL("luna", removed).Return(constant.Empty)

	res, err := f.svc.DeleteImages(context.Background(), "prop-1", dto.DeleteImagesRequest{ImageURLs: []string{removed}})

	assert.NoError(t, err)
	assert.Empty(t, res)
}
