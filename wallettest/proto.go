package wallettest

import (
	"io/ioutil"
	"reflect"
	"regexp"
	"strings"
	"testing"
)

var (
	protoMessage = regexp.MustCompile(`(?s)message (\w+) \{(.*?)\n\}`)
	protoField   = regexp.MustCompile(`(?m)^\s+(?:repeated )?\w+ (\w+) = (\d+)`)
)

// AssertProtoSchema fails unless every message declared in the proto file
// has a matching struct among models, with the same field names and
// numbers in its protobuf tags.
func AssertProtoSchema(t testing.TB, protoPath string, models ...interface{}) {
	t.Helper()

	raw, err := ioutil.ReadFile(protoPath)
	if err != nil {
		t.Fatalf("cannot read %s: %s", protoPath, err)
	}
	byName := make(map[string]reflect.Type)
	for _, m := range models {
		tp := reflect.TypeOf(m)
		for tp.Kind() == reflect.Ptr {
			tp = tp.Elem()
		}
		byName[tp.Name()] = tp
	}

	messages := protoMessage.FindAllStringSubmatch(string(raw), -1)
	if len(messages) != len(byName) {
		t.Errorf("%s declares %d messages, got %d models", protoPath, len(messages), len(byName))
	}
	for _, msg := range messages {
		tp, ok := byName[msg[1]]
		if !ok {
			t.Errorf("no model for message %s", msg[1])
			continue
		}
		want := make(map[string]string)
		for _, f := range protoField.FindAllStringSubmatch(msg[2], -1) {
			want[f[1]] = f[2]
		}
		got := make(map[string]string)
		for i := 0; i < tp.NumField(); i++ {
			tag := tp.Field(i).Tag.Get("protobuf")
			if tag == "" {
				continue
			}
			parts := strings.Split(tag, ",")
			for _, p := range parts[2:] {
				if strings.HasPrefix(p, "name=") {
					got[strings.TrimPrefix(p, "name=")] = parts[1]
				}
			}
		}
		if !reflect.DeepEqual(want, got) {
			t.Errorf("message %s: schema fields %v, model fields %v", msg[1], want, got)
		}
	}
}
