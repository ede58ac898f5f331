package graph

import (
	"bytes"
	"strings"
	"testing"
)

const sampleProject = `
timeline:
  kind: tractor
  name: timeline
  children:
    - kind: playlist
      name: V1
      children:
        - kind: clip
          name: clip1
          properties:
            - name: out
              value: "100"
          filters:
            - service: volume
              properties:
                - name: level
                  value: "-6"
bin:
  kind: playlist
  name: bin
  children:
    - kind: chain
      name: music
clip:
  kind: clip
  name: scratch
`

func TestLoadProject(t *testing.T) {
	roots, err := LoadProject(strings.NewReader(sampleProject))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !roots.Timeline.IsValid() || roots.Timeline.Kind() != KindTractor {
		t.Fatal("timeline missing or wrong kind")
	}
	clip := roots.Timeline.Child(0).Child(0)
	if clip.Name() != "clip1" || clip.Props().GetInt("out") != 100 {
		t.Error("clip properties not loaded")
	}
	if clip.FilterCount() != 1 || clip.FilterAt(0).Props().Get("level") != "-6" {
		t.Error("clip filters not loaded")
	}
	if roots.Bin.Child(0).Kind() != KindChain {
		t.Error("bin chain not loaded")
	}
	if roots.Clip.Name() != "scratch" {
		t.Error("open clip not loaded")
	}
}

func TestLoadProjectUnknownKind(t *testing.T) {
	_, err := LoadProject(strings.NewReader("clip:\n  kind: nonsense\n"))
	if err == nil {
		t.Error("unknown kind should fail")
	}
}

func TestLoadProjectMalformed(t *testing.T) {
	_, err := LoadProject(strings.NewReader("timeline: [not a map"))
	if err == nil {
		t.Error("malformed document should fail")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	roots, err := LoadProject(strings.NewReader(sampleProject))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := SaveProject(&buf, roots); err != nil {
		t.Fatalf("save: %v", err)
	}
	again, err := LoadProject(&buf)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	before := ChainDigest(roots.Timeline.Child(0).Child(0))
	after := ChainDigest(again.Timeline.Child(0).Child(0))
	if before != after {
		t.Error("filter chain changed across save/load")
	}
	if again.Bin.ChildCount() != 1 || again.Clip.Name() != "scratch" {
		t.Error("roots changed across save/load")
	}
}
