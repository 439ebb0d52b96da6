package testioc

import (
	"context"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
)

var (
	q          mq.MQ
	mqInitOnce sync.Once
)

// InitMQ 测试统一使用内存实现, topic 和线上配置保持一致
func InitMQ() mq.MQ {
	mqInitOnce.Do(func() {
		topics := map[string]int{
			"order_events":             1,
			"order_confirmation_retry": 1,
		}
		qq := memory.NewMQ()
		for name, partitions := range topics {
			if err := qq.CreateTopic(context.Background(), name, partitions); err != nil {
				panic(err)
			}
		}
		q = qq
	})
	return q
}
