// Package mqtt implements the MQTT transport adapter (§4.3): it owns one
// paho MQTT client, exposes [transport.Transport]'s publish/subscribe
// primitives over it, and routes inbound publications to every registered
// handler whose topic filter matches.
//
// Connection lifecycle (dial, keep-alive, reconnect backoff, QoS) is
// delegated entirely to github.com/eclipse/paho.mqtt.golang; this package
// only adds the routing table, payload-size logging, and the options
// schema of §6.3.
package mqtt
