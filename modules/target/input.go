package target

// Form keys of the target definition form.
const (
	FieldName        = "targetname"
	FieldOwner       = "targetowner"
	FieldMetric      = "targetmetric"
	FieldMetricUnit  = "targetmetricunit"
	FieldTags        = "targettags"
	FieldColorRed    = "targetcolorred"
	FieldColorOrange = "targetcolororange"
	FieldColorYellow = "targetcoloryellow"
)

// Input is a submitted target definition. Every field is the raw string the
// user typed; absent fields are empty.
type Input struct {
	Name        string `form:"targetname" json:"targetname" yaml:"targetname"`
	Owner       string `form:"targetowner" json:"targetowner" yaml:"targetowner"`
	Metric      string `form:"targetmetric" json:"targetmetric" yaml:"targetmetric"`
	MetricUnit  string `form:"targetmetricunit" json:"targetmetricunit" yaml:"targetmetricunit"`
	Tags        string `form:"targettags" json:"targettags" yaml:"targettags"`
	ColorRed    string `form:"targetcolorred" json:"targetcolorred" yaml:"targetcolorred"`
	ColorOrange string `form:"targetcolororange" json:"targetcolororange" yaml:"targetcolororange"`
	ColorYellow string `form:"targetcoloryellow" json:"targetcoloryellow" yaml:"targetcoloryellow"`
}

// InputFromMap builds an Input from form keys. Missing keys become "".
func InputFromMap(m map[string]string) Input {
	return Input{
		Name:        m[FieldName],
		Owner:       m[FieldOwner],
		Metric:      m[FieldMetric],
		MetricUnit:  m[FieldMetricUnit],
		Tags:        m[FieldTags],
		ColorRed:    m[FieldColorRed],
		ColorOrange: m[FieldColorOrange],
		ColorYellow: m[FieldColorYellow],
	}
}
