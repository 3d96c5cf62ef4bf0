package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	// ProducerTimeout bounds a publish. Turn events are best effort, a slow
	// broker must not stall turn handling.
	ProducerTimeout = 5 * time.Second
	// ProducerRetryMax is the max producer retries.
	ProducerRetryMax = 3
)

var (
	// KafkaVersion is the sarama protocol version used.
	KafkaVersion = sarama.V2_6_0_0
)
