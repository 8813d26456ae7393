// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import (
	"os"
	"testing"

	"gopkg.in/yaml.v3"
)

// scenario is the union of every field used by any entry in
// testdata/scenarios.yaml; a given scenario only populates the fields
// relevant to its Name.
type scenario struct {
	Name      string     `yaml:"name"`
	Eye       [3]float64 `yaml:"eye"`
	Center    [3]float64 `yaml:"center"`
	Up        [3]float64 `yaml:"up"`
	Fovy      float64    `yaml:"fovy"`
	Aspect    float64    `yaml:"aspect"`
	Near      float64    `yaml:"near"`
	Far       float64    `yaml:"far"`
	A         [4]float64 `yaml:"a"`
	Axis      [3]float64 `yaml:"axis"`
	Angle     float64    `yaml:"angle"`
	Weight    float64    `yaml:"weight"`
	Loc       [3]float64 `yaml:"loc"`
	Scale     [3]float64 `yaml:"scale"`
	Tolerance float64    `yaml:"tolerance"`
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	raw, err := os.ReadFile("testdata/scenarios.yaml")
	if err != nil {
		t.Fatalf("reading testdata/scenarios.yaml: %v", err)
	}
	var scenarios []scenario
	if err := yaml.Unmarshal(raw, &scenarios); err != nil {
		t.Fatalf("unmarshaling testdata/scenarios.yaml: %v", err)
	}
	return scenarios
}

func vec3From(a [3]float64) Vec3[float64] { return Vec3[float64]{a[0], a[1], a[2]} }

func TestGoldenScenarios(t *testing.T) {
	for _, s := range loadScenarios(t) {
		s := s
		t.Run(s.Name, func(t *testing.T) {
			switch s.Name {
			case "look_at_offset":
				eye, center, up := vec3From(s.Eye), vec3From(s.Center), vec3From(s.Up)
				m := LookAt(eye, center, up)
				got := Vec3From4(m.MulVec(Vec4From3(eye, 1)))
				if Length3(got) > s.Tolerance {
					t.Errorf("LookAt(eye) should map eye to the view-space origin, got %v", got)
				}

			case "perspective_near_far":
				m := Perspective(s.Fovy, s.Aspect, s.Near, s.Far)
				near := m.MulVec(Vec4[float64]{0, 0, -s.Near, 1})
				far := m.MulVec(Vec4[float64]{0, 0, -s.Far, 1})
				if Abs(near.Z/near.W) > s.Tolerance {
					t.Errorf("near plane NDC depth = %v, want 0", near.Z/near.W)
				}
				if Abs(far.Z/far.W-1) > s.Tolerance {
					t.Errorf("far plane NDC depth = %v, want 1", far.Z/far.W)
				}

			case "quat_mix_halfway":
				a := QuatOf(s.A[0], s.A[1], s.A[2], s.A[3])
				b := QuatAngleAxis(s.Angle, vec3From(s.Axis))
				mid := a.Mix(b, s.Weight)
				wantAngle := s.Angle * s.Weight
				if Abs(mid.Angle()-wantAngle) > s.Tolerance {
					t.Errorf("Mix(a,b,%v).Angle() = %v, want %v", s.Weight, mid.Angle(), wantAngle)
				}

			case "decompose_recompose":
				want := Transform[float64]{
					Loc:   vec3From(s.Loc),
					Rot:   QuatAngleAxis(s.Angle, Normalize3(vec3From(s.Axis))),
					Scale: vec3From(s.Scale),
				}
				m := Recompose(want)
				got, ok := Decompose(m)
				if !ok {
					t.Fatal("Decompose should succeed on a valid affine transform")
				}
				if Distance3(got.Loc, want.Loc) > s.Tolerance {
					t.Errorf("Decompose Loc = %v, want %v", got.Loc, want.Loc)
				}
				if Distance3(got.Scale, want.Scale) > s.Tolerance {
					t.Errorf("Decompose Scale = %v, want %v", got.Scale, want.Scale)
				}

			default:
				t.Fatalf("unrecognized scenario %q", s.Name)
			}
		})
	}
}
