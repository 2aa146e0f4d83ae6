package aws

import (
	"context"

	"weather-dashboard/internal/domain/gateway/queue"
	"weather-dashboard/pkg/sqs"
)

// SQSSenderAdapter adapts the pkg/sqs.Sender to implement domain queue.Sender interface
type SQSSenderAdapter struct {
	sqsSender *sqs.Sender
}

func NewSQSSenderAdapter(sqsClient sqs.SenderAPI) queue.Sender {
	return &SQSSenderAdapter{
		sqsSender: sqs.NewSender(sqsClient),
	}
}

func (adapter *SQSSenderAdapter) SendMessage(ctx context.Context, queueName string, body any) error {
	return adapter.sqsSender.SendMessage(ctx, queueName, body)
}

func (adapter *SQSSenderAdapter) SendMessageBatch(ctx context.Context, queueName string, messages []queue.BatchMessage) (*queue.BatchResult, error) {
	sqsMessages := make([]sqs.BatchMessage, len(messages))
	for i, msg := range messages {
		sqsMessages[i] = sqs.BatchMessage{
			MessageID: msg.MessageID,
			Body:      msg.Body,
		}
	}

	result, err := adapter.sqsSender.SendMessageBatch(ctx, queueName, sqsMessages)
	if err != nil {
		return nil, err
	}

	return &queue.BatchResult{
		Successful: result.Successful,
		Failed:     result.Failed,
	}, nil
}
