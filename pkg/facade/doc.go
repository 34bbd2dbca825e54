// Package facade exposes the per-component, typed publish/subscribe
// surface consumed by hotword, ASR, NLU, TTS, audio-server, dialogue,
// injection, voice-activity, and sound-feedback implementations (§4.5).
//
// Every component defines a client interface (the verbs a consumer uses:
// publish_X, subscribe_Y) and a backend interface (the dual, used by the
// component that implements that role). Both are satisfied by the same
// concrete type, which is built on top of [transport.Transport] and is
// therefore interchangeable between the MQTT adapter and the in-process
// bus without any code change in the caller: construct it with an
// *mqtt.Client for a networked deployment, or an *inprocess.Bus for tests
// and same-process wiring.
package facade
