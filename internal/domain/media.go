package domain

// InstanceType classifies a rendered photo variant.
type InstanceType int

const (
	InstanceUnknown InstanceType = iota
	InstanceThumbnail
	InstanceSmall
	InstanceMedium
	InstanceLarge
	InstanceCustom
)

func (t InstanceType) String() string {
	switch t {
	case InstanceThumbnail:
		return "Thumbnail"
	case InstanceSmall:
		return "Small"
	case InstanceMedium:
		return "Medium"
	case InstanceLarge:
		return "Large"
	case InstanceCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// ParseInstanceType maps the upstream type label onto the closed enum.
// Unrecognized labels map to InstanceUnknown rather than failing the decode;
// they simply never match a preference.
func ParseInstanceType(s string) InstanceType {
	switch s {
	case "Thumbnail":
		return InstanceThumbnail
	case "Small":
		return InstanceSmall
	case "Medium":
		return InstanceMedium
	case "Large":
		return InstanceLarge
	case "Custom":
		return InstanceCustom
	default:
		return InstanceUnknown
	}
}

type Orientation int

const (
	OrientationLandscape Orientation = iota
	OrientationPortrait
)

func (o Orientation) String() string {
	if o == OrientationPortrait {
		return "Portrait"
	}
	return "Landscape"
}

func ParseOrientation(s string) Orientation {
	if s == "Portrait" {
		return OrientationPortrait
	}
	return OrientationLandscape
}

// ScaleAxis selects which axis a rendered photo is scaled along.
type ScaleAxis int

const (
	AxisX ScaleAxis = iota
	AxisY
)

func (a ScaleAxis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// PhotoRole distinguishes the two photo slots an article import fills.
type PhotoRole int

const (
	RoleFullSize PhotoRole = iota
	RoleThumbnail
)

func (r PhotoRole) String() string {
	if r == RoleThumbnail {
		return "thumbnail"
	}
	return "full-size"
}

// Suffix is appended to the destination filename for non-primary roles so the
// two materialized variants of one article never collide.
func (r PhotoRole) Suffix() string {
	if r == RoleThumbnail {
		return "-thumbnail"
	}
	return ""
}

// RemotePhoto is one photo attached to an article, with its rendered
// instances (scaled variants).
type RemotePhoto struct {
	ID          int64
	Caption     string
	AltText     string
	Orientation Orientation
	Instances   []PhotoInstance
}

type PhotoInstance struct {
	URL    string
	Width  int
	Height int
	Type   InstanceType
}

// ResolvedPhoto is the single instance chosen for a role, plus the derived
// destination filename the download uses.
type ResolvedPhoto struct {
	PhotoID             int64
	URL                 string
	Caption             string
	AltText             string
	Width               int
	Height              int
	Orientation         Orientation
	DestinationFileName string
}

// PlayerPreference is one entry of the ordered video player fallback chain.
type PlayerPreference struct {
	Player     string
	MinVersion string
}

// VideoEmbed carries the embeddable markup negotiated by the provider. The
// negotiation internals stay on the provider side.
type VideoEmbed struct {
	EmbedCode string
}
