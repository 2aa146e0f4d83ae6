package sqs

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"weather-dashboard/pkg/log"
)

// HandlerFunc defines a function that handles a SQS Message
type HandlerFunc func(ctx context.Context, msg *types.Message) error

// HandleMessage implements the Handler interface for HandlerFunc
func (f HandlerFunc) HandleMessage(ctx context.Context, msg *types.Message) error {
	return f(ctx, msg)
}

// Handler processes a SQS Message. A nil error deletes the message from the queue.
type Handler interface {
	HandleMessage(ctx context.Context, msg *types.Message) error
}

// WorkerAPI is the subset of the SQS client used by Worker
type WorkerAPI interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// HealthStatus of a worker
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// WorkerHealth is the result of Worker.HealthCheck
type WorkerHealth struct {
	Status  HealthStatus
	Details map[string]string
}

// WorkerConfig defines the configuration options for a Worker
type WorkerConfig struct {
	MaxNumberOfMessages int32
	WaitTimeSeconds     int32
	PoolSize            int
	// ReceiveErrorDelay is the pause after a failed ReceiveMessage call
	ReceiveErrorDelay time.Duration
}

// maxConsecutiveErrors is the number of failed receives after which the worker reports DOWN.
const maxConsecutiveErrors = 3

// Worker polls and processes messages from a SQS queue
type Worker struct {
	sqsClient           WorkerAPI
	queueName           string
	queueURL            string
	maxNumberOfMessages int32
	waitTimeSeconds     int32
	poolSize            int
	receiveErrorDelay   time.Duration
	handler             Handler

	running           atomic.Bool
	processed         atomic.Int64
	failed            atomic.Int64
	consecutiveErrors atomic.Int64
	lastPoll          atomic.Int64
	lastError         atomic.Value
}

// NewWorker creates and returns a new Worker.
//
// If the provided WorkerConfig is nil or its fields are zero,
// the following defaults will be used:
//   - MaxNumberOfMessages: 10
//   - WaitTimeSeconds: 20
//   - PoolSize: 1
//   - ReceiveErrorDelay: 1s
func NewWorker(ctx context.Context, sqsClient WorkerAPI, queueName string, handler Handler, config *WorkerConfig) (*Worker, error) {
	var maxMessages int32 = 10
	var waitTime int32 = 20
	poolSize := 1
	errorDelay := time.Second

	if config != nil {
		if config.MaxNumberOfMessages != 0 {
			maxMessages = config.MaxNumberOfMessages
		}
		if config.WaitTimeSeconds != 0 {
			waitTime = config.WaitTimeSeconds
		}
		if config.PoolSize != 0 {
			poolSize = config.PoolSize
		}
		if config.ReceiveErrorDelay != 0 {
			errorDelay = config.ReceiveErrorDelay
		}
	}

	if maxMessages < 1 || maxMessages > 10 {
		return nil, errors.New("maxNumberOfMessages must be between 1 and 10")
	}
	if waitTime < 1 || waitTime > 20 {
		return nil, errors.New("waitTimeSeconds must be between 1 and 20")
	}
	if poolSize < 1 {
		return nil, errors.New("poolSize must be greater than 0")
	}

	result, err := sqsClient.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: &queueName,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to get queue URL: %w", err)
	}
	if result.QueueUrl == nil {
		return nil, fmt.Errorf("queue URL is nil for queue %s", queueName)
	}

	return &Worker{
		sqsClient:           sqsClient,
		queueName:           queueName,
		queueURL:            *result.QueueUrl,
		maxNumberOfMessages: maxMessages,
		waitTimeSeconds:     waitTime,
		poolSize:            poolSize,
		receiveErrorDelay:   errorDelay,
		handler:             handler,
	}, nil
}

// Start spawns PoolSize pollers and blocks until ctx is canceled and all of them returned.
// Each poller handles its received messages one at a time.
func (w *Worker) Start(ctx context.Context) {
	w.running.Store(true)
	defer w.running.Store(false)

	var wg sync.WaitGroup
	for i := 0; i < w.poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.pollMessages(ctx)
		}()
	}

	wg.Wait()
}

func (w *Worker) pollMessages(ctx context.Context) {
	for ctx.Err() == nil {
		output, err := w.sqsClient.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            &w.queueURL,
			MaxNumberOfMessages: w.maxNumberOfMessages,
			WaitTimeSeconds:     w.waitTimeSeconds,
		})
		w.lastPoll.Store(time.Now().UnixNano())

		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.consecutiveErrors.Add(1)
			w.lastError.Store(err.Error())
			log.Errorf("failed to receive messages from %s: %v", w.queueName, err)

			select {
			case <-ctx.Done():
				return
			case <-time.After(w.receiveErrorDelay):
			}
			continue
		}

		w.consecutiveErrors.Store(0)
		for i := range output.Messages {
			w.handleMessage(ctx, &output.Messages[i])
		}
	}
}

func (w *Worker) handleMessage(ctx context.Context, msg *types.Message) {
	if err := w.handler.HandleMessage(ctx, msg); err != nil {
		w.failed.Add(1)
		w.lastError.Store(err.Error())
		log.Errorf("error processing message ID %s: %v", safeMessageID(msg), err)
		return
	}
	w.processed.Add(1)

	_, err := w.sqsClient.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      &w.queueURL,
		ReceiptHandle: msg.ReceiptHandle,
	})
	if err != nil {
		log.Errorf("failed to delete message ID %s: %v", safeMessageID(msg), err)
		return
	}
	log.Debugf("deleted message ID %s", safeMessageID(msg))
}

// HealthCheck reports DOWN when the worker is not running or the last receives kept failing.
func (w *Worker) HealthCheck() WorkerHealth {
	details := map[string]string{
		"queue":              w.queueName,
		"running":            strconv.FormatBool(w.running.Load()),
		"processed":          strconv.FormatInt(w.processed.Load(), 10),
		"failed":             strconv.FormatInt(w.failed.Load(), 10),
		"consecutive_errors": strconv.FormatInt(w.consecutiveErrors.Load(), 10),
	}
	if last := w.lastPoll.Load(); last != 0 {
		details["last_poll"] = time.Unix(0, last).UTC().Format(time.RFC3339)
	}
	if lastErr, ok := w.lastError.Load().(string); ok {
		details["last_error"] = lastErr
	}

	status := StatusUp
	if !w.running.Load() || w.consecutiveErrors.Load() >= maxConsecutiveErrors {
		status = StatusDown
	}

	return WorkerHealth{Status: status, Details: details}
}

func safeMessageID(msg *types.Message) string {
	if msg == nil || msg.MessageId == nil {
		return ""
	}
	return *msg.MessageId
}
