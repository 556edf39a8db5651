package feature

// Category is one of the six content categories the revenue model was trained on.
type Category string

const (
	CategoryGaming        Category = "Gaming"
	CategoryEducation     Category = "Education"
	CategoryTech          Category = "Tech"
	CategoryEntertainment Category = "Entertainment"
	CategoryLifestyle     Category = "Lifestyle"
	CategoryMusic         Category = "Music"
)

// Categories lists the model vocabulary in display order.
func Categories() []Category {
	return []Category{
		CategoryGaming,
		CategoryEducation,
		CategoryTech,
		CategoryEntertainment,
		CategoryLifestyle,
		CategoryMusic,
	}
}

// ParseCategory returns the matching category, or CategoryEntertainment for
// anything outside the vocabulary.
func ParseCategory(s string) Category {
	for _, c := range Categories() {
		if string(c) == s {
			return c
		}
	}
	return CategoryEntertainment
}

// Device is the dominant viewing device class.
type Device string

const (
	DeviceMobile  Device = "Mobile"
	DeviceDesktop Device = "Desktop"
	DeviceTV      Device = "TV"
	DeviceTablet  Device = "Tablet"
)

func Devices() []Device {
	return []Device{DeviceMobile, DeviceDesktop, DeviceTV, DeviceTablet}
}

// ParseDevice returns the matching device, or DeviceMobile for anything else.
func ParseDevice(s string) Device {
	for _, d := range Devices() {
		if string(d) == s {
			return d
		}
	}
	return DeviceMobile
}

// Country is a two-letter audience country code from the training set.
type Country string

const (
	CountryUS Country = "US"
	CountryIN Country = "IN"
	CountryCA Country = "CA"
	CountryUK Country = "UK"
	CountryDE Country = "DE"
	CountryAU Country = "AU"
)

func Countries() []Country {
	return []Country{CountryUS, CountryIN, CountryCA, CountryUK, CountryDE, CountryAU}
}

// ParseCountry returns the matching country, or CountryUS for anything else.
func ParseCountry(s string) Country {
	for _, c := range Countries() {
		if string(c) == s {
			return c
		}
	}
	return CountryUS
}
