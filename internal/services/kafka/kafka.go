package kafka

import (
	"context"

	"github.com/iwtcode/flashforgeService/internal/config"
	"github.com/iwtcode/flashforgeService/internal/interfaces"

	"github.com/segmentio/kafka-go"
)

// SnapshotProducer отправляет снапшоты телеметрии принтеров в Kafka.
// Сообщения ключуются IP-адресом принтера, поэтому используется хеш-балансер:
// вся телеметрия одного принтера попадает в одну партицию и сохраняет порядок
// опроса.
type SnapshotProducer struct {
	writer *kafka.Writer
}

// NewKafkaProducer создает продюсер снапшотов для топика телеметрии
func NewKafkaProducer(cfg *config.AppConfig) (interfaces.KafkaService, error) {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBroker),
		Topic:    cfg.KafkaTopic,
		Balancer: &kafka.Hash{},
	}
	return &SnapshotProducer{writer: writer}, nil
}

// Produce отправляет один снапшот; key - IP-адрес принтера
func (p *SnapshotProducer) Produce(ctx context.Context, key, value []byte) error {
	return p.writer.WriteMessages(ctx,
		kafka.Message{
			Key:   key,
			Value: value,
		},
	)
}

// Close закрывает соединение с Kafka
func (p *SnapshotProducer) Close() error {
	return p.writer.Close()
}
