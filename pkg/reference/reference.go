// Package reference holds the official Azure Cloud Adoption Framework
// abbreviation table used to enrich resource definitions.
//
// The table follows
// https://learn.microsoft.com/en-us/azure/cloud-adoption-framework/ready/azure-best-practices/resource-abbreviations
// and is fixed at compile time.
package reference

import (
	"maps"
	"slices"
)

// Entry is the documented description of one Terraform resource type.
type Entry struct {
	Resource                  string `json:"resource" yaml:"resource"`
	ResourceProviderNamespace string `json:"resource_provider_namespace" yaml:"resource_provider_namespace"`
	Slug                      string `json:"slug" yaml:"slug"`
}

// Table resolves a resource type name to its documented entry.
type Table interface {
	Lookup(name string) (Entry, bool)
}

var official = map[string]Entry{
	// Containers
	"azurerm_kubernetes_cluster": {
		Resource:                  "AKS cluster",
		ResourceProviderNamespace: "Microsoft.ContainerService/managedClusters",
		Slug:                      "aks",
	},
	"azurerm_kubernetes_cluster_node_pool": {
		Resource:                  "AKS user node pool",
		ResourceProviderNamespace: "Microsoft.ContainerService/managedClusters/agentPools",
		Slug:                      "np",
	},
	"azurerm_container_app": {
		Resource:                  "Container apps",
		ResourceProviderNamespace: "Microsoft.App/containerApps",
		Slug:                      "ca",
	},
	"azurerm_container_app_environment": {
		Resource:                  "Container apps environment",
		ResourceProviderNamespace: "Microsoft.App/managedEnvironments",
		Slug:                      "cae",
	},

	// General
	"azurerm_storage_account": {
		Resource:                  "Storage account",
		ResourceProviderNamespace: "Microsoft.Storage/storageAccounts",
		Slug:                      "st",
	},
	"azurerm_resource_group": {
		Resource:                  "Resource group",
		ResourceProviderNamespace: "Microsoft.Resources/resourceGroups",
		Slug:                      "rg",
	},
	"azurerm_virtual_machine": {
		Resource:                  "Virtual machine",
		ResourceProviderNamespace: "Microsoft.Compute/virtualMachines",
		Slug:                      "vm",
	},
	"azurerm_key_vault": {
		Resource:                  "Key Vault",
		ResourceProviderNamespace: "Microsoft.KeyVault/vaults",
		Slug:                      "kv",
	},
	"azurerm_app_service": {
		Resource:                  "App Service",
		ResourceProviderNamespace: "Microsoft.Web/sites",
		Slug:                      "app",
	},

	// Networking
	"azurerm_virtual_network": {
		Resource:                  "Virtual network",
		ResourceProviderNamespace: "Microsoft.Network/virtualNetworks",
		Slug:                      "vnet",
	},
	"azurerm_subnet": {
		Resource:                  "Subnet",
		ResourceProviderNamespace: "Microsoft.Network/virtualNetworks/subnets",
		Slug:                      "snet",
	},
}

// static is a read-only Table backed by a private map.
type static map[string]Entry

func (s static) Lookup(name string) (Entry, bool) {
	e, ok := s[name]
	return e, ok
}

// Default returns the compiled-in official table.
func Default() Table {
	return static(official)
}

// Static returns a Table holding a copy of entries.
func Static(entries map[string]Entry) Table {
	return static(maps.Clone(entries))
}

// Lookup resolves name against the official table.
func Lookup(name string) (Entry, bool) {
	e, ok := official[name]
	return e, ok
}

// Names returns the resource type names in the official table, sorted.
func Names() []string {
	return slices.Sorted(maps.Keys(official))
}

// Len returns the number of entries in the official table.
func Len() int {
	return len(official)
}

// NamedEntry pairs a resource type name with its entry for listing.
type NamedEntry struct {
	Name  string `json:"name" yaml:"name"`
	Entry `yaml:",inline"`
}

// Entries returns every official entry sorted by name.
func Entries() []NamedEntry {
	names := Names()
	out := make([]NamedEntry, len(names))
	for i, name := range names {
		out[i] = NamedEntry{Name: name, Entry: official[name]}
	}
	return out
}
