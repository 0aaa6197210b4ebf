package geom_test

import (
	"fmt"

	"honnef.co/go/geom"
)

func ExampleParsePath() {
	p, err := geom.ParsePath("m10,10 h20 v20 h-20 z")
	if err != nil {
		panic(err)
	}
	fmt.Println(p)
	fmt.Println(p.BoundingBox())
	fmt.Println(p.Contains(geom.Pt(15, 15)))
	// Output:
	// M10,10L30,10L30,30L10,30Z
	// Box(10, 10, 30, 30)
	// true
}

func ExamplePathBuilder() {
	var b geom.PathBuilder
	b.MoveTo(geom.Pt(0, 0))
	b.QuadraticCurveTo(geom.Pt(5, 10), geom.Pt(10, 0))
	b.SmoothQuadraticCurveTo(geom.Pt(20, 0))
	b.Rect(0, 20, 10, 5)
	fmt.Println(b.Build())
	// Output:
	// M0,0Q5,10,10,0Q15,-10,20,0M0,20L10,20L10,25L0,25Z
}

func ExampleInterpolatePath() {
	a, _ := geom.ParsePath("M0,0L10,0L10,10Z")
	b, _ := geom.ParsePath("M0,0L20,0L20,20Z")
	for _, u := range []float64{0, 0.25, 1} {
		p, err := geom.InterpolatePath(a, b, u)
		if err != nil {
			panic(err)
		}
		fmt.Println(p)
	}
	// Output:
	// M0,0L10,0L10,10Z
	// M0,0L12.5,0L12.5,12.5Z
	// M0,0L20,0L20,20Z
}

func ExampleAffine() {
	aff := geom.Translate(geom.Vec(5, 5)).Then(geom.Scale(2, 2))
	fmt.Println(aff)
	fmt.Println(aff.TransformPoint(geom.Pt(1, 1)))
	fmt.Println(geom.Map(geom.Circle{Center: geom.Pt(0, 0), Radius: 1}, aff))
	// Output:
	// matrix(2,0,0,2,10,10)
	// (12, 12)
	// Circle(10, 10, 2)
}

func ExampleBox_Union() {
	a := geom.Box{X0: 0, Y0: 0, X1: 10, Y1: 10}
	b := geom.Box{X0: 20, Y0: 20, X1: 30, Y1: 30}
	fmt.Println(a.Union(b))
	fmt.Println(geom.EmptyBox().Union(a) == a)
	// Output:
	// Box(0, 0, 30, 30)
	// true
}
