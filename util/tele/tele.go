/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package tele

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"k8s.io/klog/v2"
)

const tracerName = "vmss-inventory"

// Tracer returns the default opentelemetry tracer.
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// KeyValue is a key and value pair recorded both as a span attribute and as a log value.
type KeyValue struct {
	Key   string
	Value interface{}
}

// KVP returns a new KeyValue.
func KVP(key string, value interface{}) KeyValue {
	return KeyValue{Key: key, Value: value}
}

// StartSpanWithLogger starts a new span with the given name and returns a context
// carrying both the span and a logger decorated with the supplied key value pairs.
// The returned func ends the span and must be called, typically with defer.
//
// Common usage is:
//
//	ctx, log, done := tele.StartSpanWithLogger(ctx, "pkg.Type.Method", tele.KVP("name", name))
//	defer done()
func StartSpanWithLogger(ctx context.Context, spanName string, kvs ...KeyValue) (context.Context, logr.Logger, func()) {
	attrs := make([]attribute.KeyValue, 0, len(kvs)+1)
	values := make([]interface{}, 0, 2*len(kvs))
	if corrID, ok := CorrIDFromCtx(ctx); ok {
		attrs = append(attrs, attribute.String(string(corrIDKeyVal), string(corrID)))
	}
	for _, kv := range kvs {
		attrs = append(attrs, attribute.String(kv.Key, fmt.Sprint(kv.Value)))
		values = append(values, kv.Key, kv.Value)
	}

	ctx, span := Tracer().Start(ctx, spanName, trace.WithAttributes(attrs...))
	log := klog.FromContext(ctx)
	if len(values) > 0 {
		log = log.WithValues(values...)
	}
	ctx = klog.NewContext(ctx, log)

	return ctx, log, func() {
		span.End()
	}
}
