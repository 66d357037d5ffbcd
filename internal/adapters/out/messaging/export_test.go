package messaging

var (
	NewKafkaPublisherWithWriter     = newKafkaPublisherWithWriter
	NewRabbitMQPublisherWithChannel = newRabbitMQPublisherWithChannel
)
