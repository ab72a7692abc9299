package media

import (
	"context"
	"errors"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/sony/gobreaker/v2"

	circuitbreaker "github.com/Delvoid/ecom-admin/internal/infrastructure/circuit-breaker"
)

type CloudinaryClient struct {
	cld     *cloudinary.Cloudinary
	breaker *gobreaker.CircuitBreaker[*admin.DeleteAssetsResult]
}

func CreateCloudinaryClient(cloudName, apiKey, apiSecret string) (*CloudinaryClient, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}

	return &CloudinaryClient{
		cld:     cld,
		breaker: circuitbreaker.CreateCircuitBreaker[*admin.DeleteAssetsResult]("cloudinary"),
	}, nil
}

func (c *CloudinaryClient) DeleteAssets(ctx context.Context, publicIDs []string) error {
	if len(publicIDs) == 0 {
		return nil
	}

	_, err := c.breaker.Execute(func() (*admin.DeleteAssetsResult, error) {
		res, err := c.cld.Admin.DeleteAssets(ctx, admin.DeleteAssetsParams{
			PublicIDs: api.CldAPIArray(publicIDs),
		})
		if err != nil {
			return nil, err
		}
		if res.Error.Message != "" {
			return res, errors.New(res.Error.Message)
		}
		return res, nil
	})

	return err
}
