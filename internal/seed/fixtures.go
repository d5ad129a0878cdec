package seed

import "github.com/shopspring/decimal"

// VehicleFixture describes one catalog vehicle. Key is the stable fixture
// handle requirement fixtures reference.
type VehicleFixture struct {
	Key    string
	Year   int
	Make   string
	Model  string
	Engine string
}

// JobFixture describes one maintenance job; Slug doubles as the fixture key.
type JobFixture struct {
	Slug     string
	Title    string
	Category string
}

// ToolFixture describes one tool. Key is the stable fixture handle; several
// tools share a Name and differ only by Size/Drive.
type ToolFixture struct {
	Key    string
	Name   string
	Brand  *string
	Size   *string
	Drive  *string
	Spec   *string
	Notes  *string
	Price  *decimal.Decimal
	BuyURL *string
}

// RequirementFixture links a vehicle key, job slug and tool key. Qty 0 leaves
// the stored quantity null (readers default it to 1); empty Notes stays null.
type RequirementFixture struct {
	Vehicle string
	Job     string
	Tool    string
	Qty     int
	Notes   string
}

// Fixtures is the full seed catalog.
type Fixtures struct {
	Vehicles     []VehicleFixture
	Jobs         []JobFixture
	Tools        []ToolFixture
	Requirements []RequirementFixture
}

func str(s string) *string { return &s }

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// DefaultFixtures returns the shipped catalog: ten vehicles, eight jobs,
// twenty-three tools and the per-vehicle requirement sets.
func DefaultFixtures() Fixtures {
	f := Fixtures{
		Vehicles: []VehicleFixture{
			{Key: "accord-2015", Year: 2015, Make: "Honda", Model: "Accord", Engine: "2.4L I4"},
			{Key: "civic-2016", Year: 2016, Make: "Honda", Model: "Civic", Engine: "2.0L I4"},
			{Key: "camry-2017", Year: 2017, Make: "Toyota", Model: "Camry", Engine: "2.5L I4"},
			{Key: "corolla-2018", Year: 2018, Make: "Toyota", Model: "Corolla", Engine: "1.8L I4"},
			{Key: "rav4-2019", Year: 2019, Make: "Toyota", Model: "RAV4", Engine: "2.5L I4"},
			{Key: "f150-2018", Year: 2018, Make: "Ford", Model: "F-150", Engine: "5.0L V8"},
			{Key: "silverado-2019", Year: 2019, Make: "Chevrolet", Model: "Silverado 1500", Engine: "5.3L V8"},
			{Key: "ram1500-2017", Year: 2017, Make: "RAM", Model: "1500", Engine: "5.7L V8"},
			{Key: "wrangler-2017", Year: 2017, Make: "Jeep", Model: "Wrangler", Engine: "3.6L V6"},
			{Key: "bmw328i-2014", Year: 2014, Make: "BMW", Model: "328i", Engine: "2.0L I4 N20"},
		},
		Jobs: []JobFixture{
			{Slug: "front-brake-pads", Title: "Front Brake Pads", Category: "Brakes"},
			{Slug: "rear-brake-pads", Title: "Rear Brake Pads", Category: "Brakes"},
			{Slug: "engine-oil-filter", Title: "Engine Oil & Filter", Category: "Maintenance"},
			{Slug: "battery-replacement", Title: "Battery Replacement", Category: "Electrical"},
			{Slug: "spark-plugs", Title: "Spark Plugs", Category: "Ignition"},
			{Slug: "serpentine-belt", Title: "Serpentine Belt", Category: "Drive Belt"},
			{Slug: "engine-air-filter", Title: "Engine Air Filter", Category: "Maintenance"},
			{Slug: "cabin-air-filter", Title: "Cabin Air Filter", Category: "Maintenance"},
		},
		Tools: []ToolFixture{
			{Key: "floor-jack", Name: "Hydraulic Floor Jack", Notes: str("2-ton+ rated"), Price: price("119.00"), BuyURL: str("https://www.harborfreight.com/3-ton-low-profile-floor-jack-56621.html")},
			{Key: "jack-stands", Name: "Jack Stands (x2)", Notes: str("ANSI/ASME rated"), Price: price("42.50")},
			{Key: "socket-19", Name: "Socket", Size: str("19mm"), Drive: str("1/2\""), Notes: str("Lug nuts")},
			{Key: "socket-21", Name: "Socket", Size: str("21mm"), Drive: str("1/2\""), Notes: str("Truck lug nuts")},
			{Key: "ratchet-38", Name: "Ratchet", Drive: str("3/8\"")},
			{Key: "extension-3", Name: "Extension", Notes: str("3\"")},
			{Key: "socket-12", Name: "Socket", Size: str("12mm"), Drive: str("3/8\""), Notes: str("Caliper slide bolts")},
			{Key: "socket-17", Name: "Socket", Size: str("17mm"), Drive: str("1/2\""), Notes: str("Caliper bracket bolts")},
			{Key: "piston-compressor", Name: "C-Clamp / Piston Compressor"},
			{Key: "torque-wrench", Name: "Torque Wrench", Drive: str("1/2\""), Notes: str("20-150 ft-lb"), Price: price("74.99"), BuyURL: str("https://www.tekton.com/half-inch-drive-torque-wrench-24335")},
			{Key: "brake-cleaner", Name: "Brake Cleaner", Notes: str("Consumable")},
			{Key: "gloves", Name: "Nitrile Gloves"},
			{Key: "drain-pan", Name: "Oil Drain Pan"},
			{Key: "filter-wrench", Name: "Oil Filter Wrench", Notes: str("Band or cap type"), Price: price("12.99")},
			{Key: "socket-14", Name: "Socket", Size: str("14mm"), Drive: str("3/8\""), Notes: str("Honda drain plug")},
			{Key: "socket-10", Name: "Socket", Size: str("10mm"), Drive: str("1/4\""), Notes: str("Battery terminals")},
			{Key: "plug-socket-16", Name: "Spark Plug Socket", Size: str("16mm"), Drive: str("3/8\""), Notes: str("Magnetic or rubber insert")},
			{Key: "plug-socket-14", Name: "Spark Plug Socket", Size: str("14mm"), Drive: str("3/8\""), Notes: str("Some Toyota/BMW")},
			{Key: "feeler-gauge", Name: "Feeler Gauge"},
			{Key: "dielectric-grease", Name: "Dielectric Grease"},
			{Key: "belt-tool", Name: "Serpentine Belt Tool", Notes: str("Low-profile breaker or 3/8\" square"), Price: price("34.95")},
			{Key: "trim-tool", Name: "Trim Clip Removal Tool", Notes: str("Cabin filter covers")},
			{Key: "phillips", Name: "Phillips Screwdriver"},
		},
	}
	f.Requirements = defaultRequirements()
	return f
}

// vehicleProfile captures the per-vehicle variation in the requirement sets:
// which lug socket fits, which plug socket fits, and which jobs the fixtures
// define at all. Jobs absent from a profile stay empty on purpose so the
// "no tools found" outcome is representable with shipped data.
type vehicleProfile struct {
	key        string
	lugSocket  string
	lugNote    string
	plugSocket string
	skipJobs   []string
}

var vehicleProfiles = []vehicleProfile{
	{key: "accord-2015", lugSocket: "socket-19", lugNote: "Lug nuts", plugSocket: "plug-socket-16"},
	{key: "civic-2016", lugSocket: "socket-19", lugNote: "Lug nuts", plugSocket: "plug-socket-16"},
	{key: "camry-2017", lugSocket: "socket-21", lugNote: "Lug nuts", plugSocket: "plug-socket-14"},
	{key: "corolla-2018", lugSocket: "socket-21", lugNote: "Lug nuts", plugSocket: "plug-socket-14"},
	{key: "rav4-2019", lugSocket: "socket-21", lugNote: "Lug nuts", plugSocket: "plug-socket-14"},
	{key: "f150-2018", lugSocket: "socket-21", lugNote: "Lug nuts", plugSocket: "plug-socket-16"},
	{key: "silverado-2019", lugSocket: "socket-21", lugNote: "Lug nuts", plugSocket: "plug-socket-16"},
	{key: "ram1500-2017", lugSocket: "socket-21", lugNote: "Lug nuts", plugSocket: "plug-socket-16"},
	{key: "wrangler-2017", lugSocket: "socket-19", lugNote: "Lug nuts", plugSocket: "plug-socket-16"},
	{key: "bmw328i-2014", lugSocket: "socket-17", lugNote: "Lug bolts", plugSocket: "plug-socket-14", skipJobs: []string{"serpentine-belt", "cabin-air-filter"}},
}

func defaultRequirements() []RequirementFixture {
	var reqs []RequirementFixture

	add := func(vehicle, job, tool, notes string) {
		reqs = append(reqs, RequirementFixture{Vehicle: vehicle, Job: job, Tool: tool, Notes: notes})
	}

	for _, p := range vehicleProfiles {
		skip := map[string]bool{}
		for _, s := range p.skipJobs {
			skip[s] = true
		}

		if !skip["front-brake-pads"] {
			add(p.key, "front-brake-pads", "floor-jack", "")
			add(p.key, "front-brake-pads", "jack-stands", "")
			add(p.key, "front-brake-pads", p.lugSocket, p.lugNote)
			add(p.key, "front-brake-pads", "ratchet-38", "")
			add(p.key, "front-brake-pads", "extension-3", "")
			add(p.key, "front-brake-pads", "socket-12", "Caliper slide bolts")
			add(p.key, "front-brake-pads", "socket-17", "Caliper bracket bolts")
			add(p.key, "front-brake-pads", "piston-compressor", "")
			add(p.key, "front-brake-pads", "torque-wrench", "Check manual for torque")
		}

		if !skip["rear-brake-pads"] {
			add(p.key, "rear-brake-pads", "floor-jack", "")
			add(p.key, "rear-brake-pads", "jack-stands", "")
			add(p.key, "rear-brake-pads", p.lugSocket, p.lugNote)
			add(p.key, "rear-brake-pads", "ratchet-38", "")
		}

		if !skip["engine-oil-filter"] {
			add(p.key, "engine-oil-filter", "drain-pan", "")
			add(p.key, "engine-oil-filter", "socket-14", "Drain plug")
			add(p.key, "engine-oil-filter", "filter-wrench", "")
			add(p.key, "engine-oil-filter", "gloves", "")
		}

		if !skip["battery-replacement"] {
			add(p.key, "battery-replacement", "socket-10", "Battery terminals")
			add(p.key, "battery-replacement", "dielectric-grease", "Coat terminals before refit")
		}

		if !skip["spark-plugs"] {
			add(p.key, "spark-plugs", p.plugSocket, "")
			add(p.key, "spark-plugs", "ratchet-38", "")
			add(p.key, "spark-plugs", "extension-3", "")
			add(p.key, "spark-plugs", "feeler-gauge", "Verify gap")
			add(p.key, "spark-plugs", "dielectric-grease", "")
			add(p.key, "spark-plugs", "torque-wrench", "Plug torque per manual")
		}

		if !skip["serpentine-belt"] {
			add(p.key, "serpentine-belt", "belt-tool", "Release tensioner")
		}

		if !skip["engine-air-filter"] {
			add(p.key, "engine-air-filter", "phillips", "")
		}

		if !skip["cabin-air-filter"] {
			add(p.key, "cabin-air-filter", "trim-tool", "")
		}
	}

	// Trucks go through more cleaner on brake jobs.
	for _, key := range []string{"f150-2018", "silverado-2019", "ram1500-2017"} {
		reqs = append(reqs, RequirementFixture{Vehicle: key, Job: "front-brake-pads", Tool: "brake-cleaner", Qty: 2})
	}

	return reqs
}
