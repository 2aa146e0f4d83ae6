package sqs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"golang.org/x/sync/errgroup"

	"weather-dashboard/pkg/log"
)

// maxBatchSize is the SQS limit of entries per SendMessageBatch call.
const maxBatchSize = 10

// maxParallelBatches bounds the SendMessageBatch calls in flight for one SendMessageBatch.
const maxParallelBatches = 4

// BatchMessage represents a message to be sent in batch
type BatchMessage struct {
	MessageID string `json:"messageId"`
	Body      any    `json:"body"`
}

// BatchResult represents the result of a batch send operation
type BatchResult struct {
	Successful []string `json:"successful"`
	Failed     []string `json:"failed"`
}

// SenderAPI is the subset of the SQS client used by Sender
type SenderAPI interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	SendMessageBatch(ctx context.Context, params *sqs.SendMessageBatchInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageBatchOutput, error)
}

// Sender serializes bodies to JSON and sends them to queues resolved by name
type Sender struct {
	sqsClient SenderAPI
	queueURLs sync.Map
}

// NewSender creates and returns a new Sender
func NewSender(sqsClient SenderAPI) *Sender {
	return &Sender{
		sqsClient: sqsClient,
	}
}

// SendMessage serializes the provided body to JSON and sends it to the specified queue
func (s *Sender) SendMessage(ctx context.Context, queueName string, body any) error {
	queueURL, err := s.getQueueURL(ctx, queueName)
	if err != nil {
		return fmt.Errorf("failed to get queue URL for %s: %w", queueName, err)
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to serialize message body to JSON: %w", err)
	}

	messageBody := string(jsonBody)
	_, err = s.sqsClient.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    &queueURL,
		MessageBody: &messageBody,
	})
	if err != nil {
		return fmt.Errorf("failed to send message to queue %s: %w", queueName, err)
	}

	return nil
}

// SendMessageBatch splits messages into chunks of 10 and sends up to maxParallelBatches chunks at once.
// A chunk that fails as a whole marks all of its messages as failed; ids keep the input order.
func (s *Sender) SendMessageBatch(ctx context.Context, queueName string, messages []BatchMessage) (*BatchResult, error) {
	if len(messages) == 0 {
		return &BatchResult{Successful: []string{}, Failed: []string{}}, nil
	}

	queueURL, err := s.getQueueURL(ctx, queueName)
	if err != nil {
		return nil, fmt.Errorf("failed to get queue URL for %s: %w", queueName, err)
	}

	chunks := make([][]BatchMessage, 0, (len(messages)+maxBatchSize-1)/maxBatchSize)
	for i := 0; i < len(messages); i += maxBatchSize {
		chunks = append(chunks, messages[i:min(i+maxBatchSize, len(messages))])
	}

	results := make([]*BatchResult, len(chunks))
	group := new(errgroup.Group)
	group.SetLimit(maxParallelBatches)
	for i, chunk := range chunks {
		group.Go(func() error {
			chunkResult, err := s.sendBatch(ctx, queueURL, chunk)
			if err != nil {
				log.Warnf("batch of %d messages to %s failed: %v", len(chunk), queueName, err)
				chunkResult = &BatchResult{Failed: extractMessageIDs(chunk)}
			}
			results[i] = chunkResult
			return nil
		})
	}
	_ = group.Wait()

	merged := &BatchResult{Successful: []string{}, Failed: []string{}}
	for _, r := range results {
		merged.Successful = append(merged.Successful, r.Successful...)
		merged.Failed = append(merged.Failed, r.Failed...)
	}
	return merged, nil
}

// sendBatch sends a single batch of up to 10 messages
func (s *Sender) sendBatch(ctx context.Context, queueURL string, messages []BatchMessage) (*BatchResult, error) {
	entries := make([]types.SendMessageBatchRequestEntry, 0, len(messages))
	result := &BatchResult{
		Successful: []string{},
		Failed:     []string{},
	}

	for _, msg := range messages {
		jsonBody, err := json.Marshal(msg.Body)
		if err != nil {
			result.Failed = append(result.Failed, msg.MessageID)
			continue
		}

		id, messageBody := msg.MessageID, string(jsonBody)
		entries = append(entries, types.SendMessageBatchRequestEntry{
			Id:          &id,
			MessageBody: &messageBody,
		})
	}

	if len(entries) == 0 {
		return result, nil
	}

	output, err := s.sqsClient.SendMessageBatch(ctx, &sqs.SendMessageBatchInput{
		QueueUrl: &queueURL,
		Entries:  entries,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send message batch: %w", err)
	}

	for _, success := range output.Successful {
		if success.Id != nil {
			result.Successful = append(result.Successful, *success.Id)
		}
	}
	for _, failed := range output.Failed {
		if failed.Id != nil {
			result.Failed = append(result.Failed, *failed.Id)
		}
	}

	return result, nil
}

// getQueueURL resolves the queue URL once per queue name
func (s *Sender) getQueueURL(ctx context.Context, queueName string) (string, error) {
	if url, ok := s.queueURLs.Load(queueName); ok {
		return url.(string), nil
	}

	result, err := s.sqsClient.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: &queueName,
	})
	if err != nil {
		return "", err
	}
	if result.QueueUrl == nil {
		return "", fmt.Errorf("queue URL is nil for queue %s", queueName)
	}

	s.queueURLs.Store(queueName, *result.QueueUrl)
	return *result.QueueUrl, nil
}

func extractMessageIDs(messages []BatchMessage) []string {
	ids := make([]string, len(messages))
	for i, msg := range messages {
		ids[i] = msg.MessageID
	}
	return ids
}
