package services

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"github.com/kthiza/protein-tracking-app/pipeline"
)

// VisionService is the adapter for the external image-labeling service
// (AWS Rekognition). It is the only place the labeling provider's types
// appear; the pipeline sees plain RawLabels.
type VisionService struct {
	client *rekognition.Client
}

func NewVisionService() (*VisionService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &VisionService{client: rekognition.NewFromConfig(cfg)}, nil
}

// DetectLabels returns the ranked labels for a base64-encoded image.
// Rekognition scores are 0-100; they are divided by 100 here, but the
// pipeline never assumes the result is a bounded probability.
func (v *VisionService) DetectLabels(ctx context.Context, base64Img string) ([]pipeline.RawLabel, error) {
	data, err := decodeDataURI(base64Img)
	if err != nil {
		return nil, err
	}

	out, err := v.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(15),
		MinConfidence: aws.Float32(55),
	})
	if err != nil {
		return nil, err
	}

	labels := make([]pipeline.RawLabel, 0, len(out.Labels))
	for _, l := range out.Labels {
		if l.Name == nil || l.Confidence == nil {
			continue
		}
		labels = append(labels, pipeline.RawLabel{
			Text:       *l.Name,
			Confidence: float64(*l.Confidence) / 100,
		})
	}
	return labels, nil
}

// decodeDataURI strips the "data:image/...;base64," prefix and decodes the
// payload. A bare base64 string without the prefix is accepted too.
func decodeDataURI(img string) ([]byte, error) {
	payload := img
	if strings.HasPrefix(img, "data:") {
		if !strings.HasPrefix(img, "data:image") {
			return nil, errors.New("invalid data URI")
		}
		idx := strings.Index(img, ",")
		if idx < 0 {
			return nil, errors.New("invalid data URI")
		}
		payload = img[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("empty image payload")
	}
	return data, nil
}
