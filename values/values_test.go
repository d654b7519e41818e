package values

import (
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeResolver map[string]string

func (f fakeResolver) Resolve(value string, namespaces []string) (string, bool) {
	for _, ns := range namespaces {
		if v, ok := f[ns+"-"+value]; ok {
			return v, true
		}
	}
	return "", false
}

func TestApplyOpacity(t *testing.T) {
	Convey("ApplyOpacity", t, func() {
		Convey("Should convert fractions to percentage", func() {
			So(ApplyOpacity("red", "0.5"), ShouldEqual, "color-mix(in srgb, red 50%, transparent)")
			So(ApplyOpacity("red", "0.07"), ShouldEqual, "color-mix(in srgb, red 7%, transparent)")
		})
		Convey("Should treat bare numbers as percentage", func() {
			So(ApplyOpacity("red", "50"), ShouldEqual, ApplyOpacity("red", "50%"))
			So(ApplyOpacity("red", "12.5"), ShouldEqual, "color-mix(in srgb, red 12.5%, transparent)")
		})
		Convey("Should pass non numeric alpha through", func() {
			So(ApplyOpacity("var(--c)", "var(--a)"), ShouldEqual, "color-mix(in srgb, var(--c) var(--a), transparent)")
		})
		Convey("Should leave opaque colors alone", func() {
			So(ApplyOpacity("red", "1"), ShouldEqual, "red")
			So(ApplyOpacity("red", "100%"), ShouldEqual, "red")
			So(ApplyOpacity("red", ""), ShouldEqual, "red")
		})
	})
}

func TestResolveColorModifier(t *testing.T) {
	Convey("ResolveColorModifier", t, func() {
		theme := fakeResolver{"--opacity-half": "0.5"}

		Convey("Without modifier color is unchanged", func() {
			v, ok := ResolveColorModifier("red", mo.None[Alpha](), theme)
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "red")
		})
		Convey("Arbitrary modifier is used literally", func() {
			v, ok := ResolveColorModifier("red", mo.Some(Alpha{Value: "50%", Arbitrary: true}), theme)
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "color-mix(in srgb, red 50%, transparent)")
		})
		Convey("Named modifier is looked up in opacity namespace", func() {
			v, ok := ResolveColorModifier("red", mo.Some(Alpha{Value: "half"}), theme)
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "color-mix(in srgb, red 50%, transparent)")
		})
		Convey("Named integer modifier is a percentage", func() {
			v, ok := ResolveColorModifier("red", mo.Some(Alpha{Value: "25"}), nil)
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "color-mix(in srgb, red 25%, transparent)")
		})
		Convey("Unknown named modifier fails", func() {
			_, ok := ResolveColorModifier("red", mo.Some(Alpha{Value: "bogus"}), theme)
			So(ok, ShouldBeFalse)
			_, ok = ResolveColorModifier("red", mo.Some(Alpha{Value: "150"}), theme)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestApplyNegative(t *testing.T) {
	Convey("ApplyNegative", t, func() {
		So(ApplyNegative("10px"), ShouldEqual, "calc(10px * -1)")
		So(ApplyNegative("var(--spacing)"), ShouldEqual, "calc(var(--spacing) * -1)")
	})
}

func TestNumeric(t *testing.T) {
	Convey("Numeric predicates", t, func() {
		Convey("IsPositiveInteger", func() {
			So(IsPositiveInteger("0"), ShouldBeTrue)
			So(IsPositiveInteger("12"), ShouldBeTrue)
			So(IsPositiveInteger("012"), ShouldBeFalse)
			So(IsPositiveInteger("1.5"), ShouldBeFalse)
			So(IsPositiveInteger("-1"), ShouldBeFalse)
			So(IsPositiveInteger("abc"), ShouldBeFalse)
		})
		Convey("IsStrictPositiveInteger", func() {
			So(IsStrictPositiveInteger("0"), ShouldBeFalse)
			So(IsStrictPositiveInteger("3"), ShouldBeTrue)
		})
		Convey("IsValidSpacingMultiplier", func() {
			So(IsValidSpacingMultiplier("4"), ShouldBeTrue)
			So(IsValidSpacingMultiplier("2.5"), ShouldBeTrue)
			So(IsValidSpacingMultiplier("0.75"), ShouldBeTrue)
			So(IsValidSpacingMultiplier("0.3"), ShouldBeFalse)
			So(IsValidSpacingMultiplier("-4"), ShouldBeFalse)
			So(IsValidSpacingMultiplier("4.50"), ShouldBeFalse)
		})
		Convey("IsValidOpacityValue", func() {
			So(IsValidOpacityValue("0"), ShouldBeTrue)
			So(IsValidOpacityValue("100"), ShouldBeTrue)
			So(IsValidOpacityValue("101"), ShouldBeFalse)
			So(IsValidOpacityValue("2.5"), ShouldBeFalse)
		})
		Convey("IsFraction", func() {
			So(IsFraction("1/2"), ShouldBeTrue)
			So(IsFraction("1/0"), ShouldBeFalse)
			So(IsFraction("1.5/2"), ShouldBeFalse)
			So(IsFraction("full"), ShouldBeFalse)
		})
	})
}

func TestInferDataType(t *testing.T) {
	Convey("InferDataType", t, func() {
		bg := []DataType{DataTypeImage, DataTypeColor, DataTypePercentage, DataTypePosition, DataTypeBgSize, DataTypeLength, DataTypeUrl}

		cases := []struct {
			value string
			want  DataType
		}{
			{"url(x.png)", DataTypeImage},
			{"linear-gradient(to right, red, blue)", DataTypeImage},
			{"#ef4444", DataTypeColor},
			{"rgb(0 0 0 / 0.5)", DataTypeColor},
			{"rebeccapurple", DataTypeColor},
			{"50%", DataTypePercentage},
			{"center top", DataTypePosition},
			{"auto 100%", DataTypeBgSize},
			{"10px", DataTypePosition},
		}
		for _, c := range cases {
			got, ok := InferDataType(c.value, bg...)
			So(ok, ShouldBeTrue)
			So(got, ShouldEqual, c.want)
		}

		Convey("var() is never inferred", func() {
			_, ok := InferDataType("var(--x)", bg...)
			So(ok, ShouldBeFalse)
		})
		Convey("Unmatched values report miss", func() {
			_, ok := InferDataType("something-odd", DataTypeLength, DataTypeNumber)
			So(ok, ShouldBeFalse)
		})
		Convey("Order of candidates decides", func() {
			got, _ := InferDataType("10px", DataTypeLength, DataTypePosition)
			So(got, ShouldEqual, DataTypeLength)
		})
	})
}

func TestTypeChecks(t *testing.T) {
	Convey("Type checks", t, func() {
		So(IsLength("1.5rem"), ShouldBeTrue)
		So(IsLength("calc(100% - 1rem)"), ShouldBeTrue)
		So(IsLength("10deg"), ShouldBeFalse)
		So(IsLength("0"), ShouldBeFalse)
		So(IsAngle("45deg"), ShouldBeTrue)
		So(IsAngle("0.5turn"), ShouldBeTrue)
		So(IsNumber("1.5"), ShouldBeTrue)
		So(IsInteger("3"), ShouldBeTrue)
		So(IsInteger("3.5"), ShouldBeFalse)
		So(IsRatio("16 / 9"), ShouldBeTrue)
		So(IsRatio("16/9"), ShouldBeTrue)
		So(IsURL("url('a b.png')"), ShouldBeTrue)
		So(IsVector("1 0 0"), ShouldBeTrue)
		So(IsVector("1 0"), ShouldBeFalse)
		So(IsLineWidth("thick"), ShouldBeTrue)
		So(IsFamilyName(`"Inter", sans-serif`), ShouldBeTrue)
		So(IsFamilyName("12px"), ShouldBeFalse)
		So(IsBackgroundSize("cover"), ShouldBeTrue)
		So(IsBackgroundSize("1px 2px 3px"), ShouldBeFalse)
		So(IsColor("not-a-color"), ShouldBeFalse)
		So(IsColor("CurrentColor"), ShouldBeTrue)
	})
}

func TestLegacyKeys(t *testing.T) {
	Convey("Legacy aliases", t, func() {
		ns, ok := LegacyNamespace("--colors")
		So(ok, ShouldBeTrue)
		So(ns, ShouldEqual, "--color")

		ns, ok = LegacyNamespace("--fontSize-sm")
		So(ok, ShouldBeTrue)
		So(ns, ShouldEqual, "--text-sm")

		_, ok = LegacyNamespace("--spacing")
		So(ok, ShouldBeFalse)

		So(LegacyKeys([]string{"--colors-red", "--color-red"}), ShouldResemble,
			[]string{"--colors-red", "--color-red", "--color-red"})
	})

	Convey("DataType enum", t, func() {
		dt, err := ParseDataType("BG-SIZE")
		So(err, ShouldBeNil)
		So(dt, ShouldEqual, DataTypeBgSize)
		So(dt.String(), ShouldEqual, "bg-size")
		_, err = ParseDataType("bogus")
		So(err, ShouldNotBeNil)
	})
}
