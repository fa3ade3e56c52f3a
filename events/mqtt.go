package events

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

func createClientOptions(clientID string, uri *url.URL) *mqtt.ClientOptions {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s", uri.Host))
	opts.SetClientID(clientID)
	return opts
}

func connect(clientID string, uri *url.URL) (mqtt.Client, error) {
	opts := createClientOptions(clientID, uri)
	client := mqtt.NewClient(opts)
	token := client.Connect()
	for !token.WaitTimeout(3 * time.Second) {
	}
	if err := token.Error(); err != nil {
		return nil, err
	}
	return client, nil
}

// StartMQTTBridge đẩy mọi sự kiện task lên broker MQTT dưới dạng JSON.
// Topic lấy từ path của URL, mặc định "tasks/events".
func StartMQTTBridge(bus *Bus, rawURL string) error {
	uri, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid MQTT_URL: %w", err)
	}

	topic := "tasks/events"
	if len(uri.Path) > 1 {
		topic = uri.Path[1:]
	}

	client, err := connect("task-api-pub", uri)
	if err != nil {
		return fmt.Errorf("cannot connect to MQTT broker: %w", err)
	}

	ch, _ := bus.SubscribeAll()
	go func() {
		for ev := range ch {
			payload, err := json.Marshal(ev)
			if err != nil {
				log.Printf("Error marshalling event: %v", err)
				continue
			}
			client.Publish(topic, 0, false, payload)
		}
	}()

	return nil
}
