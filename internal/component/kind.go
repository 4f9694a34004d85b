package component

// Kind tags every entity with its variant so the registry can answer typed
// queries without inspecting components.
type Kind uint8

const (
	KindNone Kind = iota
	KindAircraft
	KindInterceptor
	KindBlast
	KindSmoke
	KindBlip
)

func (k Kind) String() string {
	switch k {
	case KindAircraft:
		return "aircraft"
	case KindInterceptor:
		return "interceptor"
	case KindBlast:
		return "blast"
	case KindSmoke:
		return "smoke"
	case KindBlip:
		return "blip"
	default:
		return "none"
	}
}
