package jsonschema_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/buger/jsonparser"

	"github.com/jacoelho/jsonschema"
	"github.com/jacoelho/jsonschema/pkg/jsonvalue"
)

type benchmarkInstance struct {
	kind  string
	name  string
	value jsonvalue.Value
}

var (
	benchmarkOnce      sync.Once
	benchmarkValidator *jsonschema.Validator
	benchmarkInstances []benchmarkInstance
	benchmarkErr       error
)

// loadBenchmark reads testdata/benchmark.json: a schema plus instances, each
// tagged valid or invalid.
func loadBenchmark(tb testing.TB) (*jsonschema.Validator, []benchmarkInstance) {
	tb.Helper()

	benchmarkOnce.Do(func() {
		data, err := os.ReadFile(filepath.Join("testdata", "benchmark.json"))
		if err != nil {
			benchmarkErr = err
			return
		}
		doc, err := jsonvalue.Parse(data)
		if err != nil {
			benchmarkErr = err
			return
		}
		schema, _ := doc.Get("schema")
		benchmarkValidator, benchmarkErr = jsonschema.New(schema)
		if benchmarkErr != nil {
			return
		}
		_, benchmarkErr = jsonparser.ArrayEach(data, func(raw []byte, _ jsonparser.ValueType, _ int, _ error) {
			kind, _ := jsonparser.GetString(raw, "kind")
			name, _ := jsonparser.GetString(raw, "name")
			value, _, _, _ := jsonparser.Get(raw, "value")
			parsed, err := jsonvalue.Parse(value)
			if err != nil {
				benchmarkErr = err
				return
			}
			benchmarkInstances = append(benchmarkInstances, benchmarkInstance{kind: kind, name: name, value: parsed})
		}, "instances")
	})

	if benchmarkErr != nil {
		tb.Fatalf("load benchmark: %v", benchmarkErr)
	}
	return benchmarkValidator, benchmarkInstances
}

func TestBenchmarkInstancesVerdicts(t *testing.T) {
	v, instances := loadBenchmark(t)
	if len(instances) == 0 {
		t.Fatal("no benchmark instances")
	}
	for _, instance := range instances {
		err := v.Validate(&instance.value)
		switch {
		case instance.kind == "valid" && err != nil:
			t.Errorf("%s: should be valid: %v", instance.name, err)
		case instance.kind == "invalid" && err == nil:
			t.Errorf("%s: should be invalid", instance.name)
		}
	}
}

func BenchmarkValidate(b *testing.B) {
	v, instances := loadBenchmark(b)
	for i := range instances {
		instance := &instances[i]
		b.Run(instance.kind+"/"+instance.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = v.Validate(&instance.value)
			}
		})
	}
}

func BenchmarkValidateBytes(b *testing.B) {
	v := loadReferenceValidator(b)
	data := []byte(`{"another":"a","inner":{"another":"b","inner":{"another":"c","inner":{"another":"d"}}}}`)

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for b.Loop() {
		if err := v.ValidateBytes(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLoad(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		if _, err := jsonschema.LoadFile(filepath.Join("testdata", "reference_schema.json")); err != nil {
			b.Fatal(err)
		}
	}
}
