package topology

import (
	"github.com/calder-analytics/cascade/pkg/cascade"
)

// Built-in region rosters. Listing order matters: the propagation engine
// iterates neighbors in roster order, so reordering entries changes
// test-observable traversal results.

func asiaTopology() []cascade.NetworkNode {
	return []cascade.NetworkNode{
		{ID: "sup-asia-1", Name: "Shenzhen Precision Components", Type: cascade.TypeSupplier, Region: "asia", RiskLevel: cascade.RiskMedium, ImpactScore: 85},
		{ID: "sup-asia-2", Name: "Taipei Semiconductor Materials", Type: cascade.TypeSupplier, Region: "asia", RiskLevel: cascade.RiskHigh, ImpactScore: 90},
		{ID: "mfg-asia-1", Name: "Dongguan Assembly Works", Type: cascade.TypeManufacturer, Region: "asia", RiskLevel: cascade.RiskHigh, ImpactScore: 92},
		{ID: "mfg-asia-2", Name: "Penang Electronics Fab", Type: cascade.TypeManufacturer, Region: "asia", RiskLevel: cascade.RiskMedium, ImpactScore: 80},
		{ID: "dist-asia-1", Name: "Singapore Freight Hub", Type: cascade.TypeDistributor, Region: "asia", RiskLevel: cascade.RiskMedium, ImpactScore: 78},
		{ID: "dist-asia-2", Name: "Shanghai Port Logistics", Type: cascade.TypeDistributor, Region: "asia", RiskLevel: cascade.RiskCritical, ImpactScore: 88},
		{ID: "ret-asia-1", Name: "Tokyo Retail Network", Type: cascade.TypeRetailer, Region: "asia", RiskLevel: cascade.RiskLow, ImpactScore: 65},
		{ID: "ret-asia-2", Name: "Seoul Consumer Outlets", Type: cascade.TypeRetailer, Region: "asia", RiskLevel: cascade.RiskMedium, ImpactScore: 70},
	}
}

func europeTopology() []cascade.NetworkNode {
	return []cascade.NetworkNode{
		{ID: "sup-eu-1", Name: "Ruhr Valley Steelworks", Type: cascade.TypeSupplier, Region: "europe", RiskLevel: cascade.RiskMedium, ImpactScore: 82},
		{ID: "sup-eu-2", Name: "Lyon Chemical Supply", Type: cascade.TypeSupplier, Region: "europe", RiskLevel: cascade.RiskLow, ImpactScore: 74},
		{ID: "mfg-eu-1", Name: "Stuttgart Automotive Plant", Type: cascade.TypeManufacturer, Region: "europe", RiskLevel: cascade.RiskHigh, ImpactScore: 94},
		{ID: "mfg-eu-2", Name: "Eindhoven Electronics Line", Type: cascade.TypeManufacturer, Region: "europe", RiskLevel: cascade.RiskMedium, ImpactScore: 86},
		{ID: "dist-eu-1", Name: "Rotterdam Container Terminal", Type: cascade.TypeDistributor, Region: "europe", RiskLevel: cascade.RiskCritical, ImpactScore: 90},
		{ID: "dist-eu-2", Name: "Warsaw Rail Freight", Type: cascade.TypeDistributor, Region: "europe", RiskLevel: cascade.RiskMedium, ImpactScore: 72},
		{ID: "ret-eu-1", Name: "Paris Retail Group", Type: cascade.TypeRetailer, Region: "europe", RiskLevel: cascade.RiskLow, ImpactScore: 68},
		{ID: "ret-eu-2", Name: "Madrid Consumer Chain", Type: cascade.TypeRetailer, Region: "europe", RiskLevel: cascade.RiskLow, ImpactScore: 62},
	}
}

func northAmericaTopology() []cascade.NetworkNode {
	return []cascade.NetworkNode{
		{ID: "sup-na-1", Name: "Ohio Polymer Supply", Type: cascade.TypeSupplier, Region: "north_america", RiskLevel: cascade.RiskMedium, ImpactScore: 80},
		{ID: "sup-na-2", Name: "Monterrey Metal Stamping", Type: cascade.TypeSupplier, Region: "north_america", RiskLevel: cascade.RiskHigh, ImpactScore: 87},
		{ID: "mfg-na-1", Name: "Detroit Assembly Complex", Type: cascade.TypeManufacturer, Region: "north_america", RiskLevel: cascade.RiskHigh, ImpactScore: 91},
		{ID: "mfg-na-2", Name: "Austin Fabrication Campus", Type: cascade.TypeManufacturer, Region: "north_america", RiskLevel: cascade.RiskMedium, ImpactScore: 84},
		{ID: "dist-na-1", Name: "Long Beach Port Complex", Type: cascade.TypeDistributor, Region: "north_america", RiskLevel: cascade.RiskCritical, ImpactScore: 93},
		{ID: "dist-na-2", Name: "Memphis Air Cargo Hub", Type: cascade.TypeDistributor, Region: "north_america", RiskLevel: cascade.RiskMedium, ImpactScore: 76},
		{ID: "ret-na-1", Name: "Chicago Retail Distribution", Type: cascade.TypeRetailer, Region: "north_america", RiskLevel: cascade.RiskLow, ImpactScore: 66},
		{ID: "ret-na-2", Name: "Toronto Storefront Network", Type: cascade.TypeRetailer, Region: "north_america", RiskLevel: cascade.RiskLow, ImpactScore: 60},
	}
}

func southAmericaTopology() []cascade.NetworkNode {
	return []cascade.NetworkNode{
		{ID: "sup-sa-1", Name: "Atacama Lithium Mining", Type: cascade.TypeSupplier, Region: "south_america", RiskLevel: cascade.RiskHigh, ImpactScore: 89},
		{ID: "mfg-sa-1", Name: "Sao Paulo Industrial Park", Type: cascade.TypeManufacturer, Region: "south_america", RiskLevel: cascade.RiskMedium, ImpactScore: 83},
		{ID: "dist-sa-1", Name: "Santos Port Authority", Type: cascade.TypeDistributor, Region: "south_america", RiskLevel: cascade.RiskHigh, ImpactScore: 81},
		{ID: "ret-sa-1", Name: "Buenos Aires Retail Co-op", Type: cascade.TypeRetailer, Region: "south_america", RiskLevel: cascade.RiskMedium, ImpactScore: 64},
	}
}

func regionTopologies() map[string][]cascade.NetworkNode {
	return map[string][]cascade.NetworkNode{
		"asia":          asiaTopology(),
		"europe":        europeTopology(),
		"north_america": northAmericaTopology(),
		"south_america": southAmericaTopology(),
	}
}

// fallbackTopology is served for regions the provider does not know about.
// It mirrors the asia roster, the densest of the built-ins.
func fallbackTopology() []cascade.NetworkNode {
	return asiaTopology()
}
