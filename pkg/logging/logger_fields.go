package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Domain field helpers for common cascade-analysis fields

func Component(name string) Field {
	return String("component", name)
}

func Region(region string) Field {
	return String("region", region)
}

func Scenario(scenarioType string) Field {
	return String("scenario", scenarioType)
}

func OriginNode(id string) Field {
	return String("origin_node", id)
}

func AffectedCount(n int) Field {
	return Int("affected_nodes", n)
}

func ImpactScore(score int) Field {
	return Int("network_impact_score", score)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Count(n int) Field {
	return Int("count", n)
}
