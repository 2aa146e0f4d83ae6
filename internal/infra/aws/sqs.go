package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// NewSqsClient creates the SQS client. A non-empty endpoint points it at LocalStack or another emulator.
func NewSqsClient(awsConfig aws.Config, endpoint string) *sqs.Client {
	return sqs.NewFromConfig(awsConfig, func(o *sqs.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}
