package graphql

import (
	"errors"

	"github.com/diwise/iot-facility-mgmt/pkg/client"
	"github.com/diwise/iot-facility-mgmt/pkg/types"
	"github.com/graphql-go/graphql"
)

func (gw *Gateway) buildSchema() (graphql.Schema, error) {
	alarmType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Alarm",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"siteId":   &graphql.Field{Type: graphql.String},
			"kind":     &graphql.Field{Type: graphql.String},
			"serialNo": &graphql.Field{Type: graphql.String},
			"material": &graphql.Field{Type: graphql.String},
		},
	})

	cameraType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Camera",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"siteId":     &graphql.Field{Type: graphql.String},
			"kind":       &graphql.Field{Type: graphql.String},
			"serialNo":   &graphql.Field{Type: graphql.String},
			"resolution": &graphql.Field{Type: graphql.String},
		},
	})

	assetType := graphql.NewUnion(graphql.UnionConfig{
		Name:  "Asset",
		Types: []*graphql.Object{alarmType, cameraType},
		ResolveType: func(p graphql.ResolveTypeParams) *graphql.Object {
			asset, ok := p.Value.(types.Asset)
			if !ok {
				if ptr, ok := p.Value.(*types.Asset); ok {
					asset = *ptr
				}
			}
			if asset.IsCamera() {
				return cameraType
			}
			return alarmType
		},
	})

	sensorType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Sensor",
		Fields: graphql.Fields{
			"id":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"siteId":  &graphql.Field{Type: graphql.String},
			"name":    &graphql.Field{Type: graphql.String},
			"unit":    &graphql.Field{Type: graphql.String},
			"minSafe": &graphql.Field{Type: graphql.Float},
			"maxSafe": &graphql.Field{Type: graphql.Float},
		},
	})

	switchType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Switch",
		Fields: graphql.Fields{
			"id":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"siteId": &graphql.Field{Type: graphql.String},
			"name":   &graphql.Field{Type: graphql.String},
			"state":  &graphql.Field{Type: graphql.String},
			"states": &graphql.Field{Type: graphql.NewList(graphql.String)},
		},
	})

	siteType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Site",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"name":     &graphql.Field{Type: graphql.String},
			"location": &graphql.Field{Type: graphql.String},
			"priority": &graphql.Field{Type: graphql.Int},
			"tags":     &graphql.Field{Type: graphql.NewList(graphql.String)},
		},
	})

	siteType.AddFieldConfig("sensors", &graphql.Field{
		Type: graphql.NewList(sensorType),
		Resolve: func(p graphql.ResolveParams) (any, error) {
			site := p.Source.(types.Site)
			return gw.sensors.All(p.Context, types.SensorFilter{SiteID: site.ID})
		},
	})
	siteType.AddFieldConfig("switches", &graphql.Field{
		Type: graphql.NewList(switchType),
		Resolve: func(p graphql.ResolveParams) (any, error) {
			site := p.Source.(types.Site)
			return gw.switches.All(p.Context, site.ID)
		},
	})
	siteType.AddFieldConfig("assets", &graphql.Field{
		Type: graphql.NewList(assetType),
		Resolve: func(p graphql.ResolveParams) (any, error) {
			site := p.Source.(types.Site)
			return gw.assetsBySite(p.Context, site.ID)
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"site": &graphql.Field{
				Type: siteType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					site, err := gw.sites.Get(p.Context, strArg(p, "id"))
					if errors.Is(err, client.ErrNotFound) {
						return nil, nil
					}
					if err != nil {
						return nil, err
					}
					return site, nil
				},
			},
			"sites": &graphql.Field{
				Type: graphql.NewList(siteType),
				Args: graphql.FieldConfigArgument{
					"name":     &graphql.ArgumentConfig{Type: graphql.String},
					"location": &graphql.ArgumentConfig{Type: graphql.String},
					"tags":     &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
					"limit":    &graphql.ArgumentConfig{Type: graphql.Int},
					"skip":     &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return gw.sites.All(p.Context, types.SiteFilter{
						Name:     strArg(p, "name"),
						Location: strArg(p, "location"),
						Tags:     tagsArg(p, "tags"),
						Limit:    intArg(p, "limit"),
						Skip:     intArg(p, "skip"),
					})
				},
			},
			"sensor": &graphql.Field{
				Type: sensorType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					sensor, err := gw.sensors.Get(p.Context, strArg(p, "id"))
					if errors.Is(err, client.ErrNotFound) {
						return nil, nil
					}
					if err != nil {
						return nil, err
					}
					return sensor, nil
				},
			},
			"sensors": &graphql.Field{
				Type: graphql.NewList(sensorType),
				Args: graphql.FieldConfigArgument{
					"siteId":  &graphql.ArgumentConfig{Type: graphql.String},
					"name":    &graphql.ArgumentConfig{Type: graphql.String},
					"minSafe": &graphql.ArgumentConfig{Type: graphql.Float},
					"maxSafe": &graphql.ArgumentConfig{Type: graphql.Float},
					"limit":   &graphql.ArgumentConfig{Type: graphql.Int},
					"skip":    &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return gw.sensors.All(p.Context, types.SensorFilter{
						SiteID:  strArg(p, "siteId"),
						Name:    strArg(p, "name"),
						MinSafe: floatArg(p, "minSafe"),
						MaxSafe: floatArg(p, "maxSafe"),
						Limit:   intArg(p, "limit"),
						Skip:    intArg(p, "skip"),
					})
				},
			},
			"switch": &graphql.Field{
				Type: switchType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					sw, err := gw.switches.Get(p.Context, strArg(p, "id"))
					if errors.Is(err, client.ErrNotFound) {
						return nil, nil
					}
					if err != nil {
						return nil, err
					}
					return sw, nil
				},
			},
			"switches": &graphql.Field{
				Type: graphql.NewList(switchType),
				Args: graphql.FieldConfigArgument{
					"siteId": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return gw.switches.All(p.Context, strArg(p, "siteId"))
				},
			},
			"asset": &graphql.Field{
				Type: assetType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					asset, err := gw.assetByID(p.Context, strArg(p, "id"))
					if err != nil {
						return nil, err
					}
					if asset == nil {
						return nil, nil
					}
					return *asset, nil
				},
			},
			"assets": &graphql.Field{
				Type: graphql.NewList(assetType),
				Args: graphql.FieldConfigArgument{
					"siteId": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return gw.assetsBySite(p.Context, strArg(p, "siteId"))
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createSite": &graphql.Field{
				Type: siteType,
				Args: graphql.FieldConfigArgument{
					"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"location": &graphql.ArgumentConfig{Type: graphql.String},
					"priority": &graphql.ArgumentConfig{Type: graphql.Int},
					"tags":     &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return gw.sites.Create(p.Context, types.Site{
						Name:     strArg(p, "name"),
						Location: strArg(p, "location"),
						Priority: intArg(p, "priority"),
						Tags:     tagsArg(p, "tags"),
					})
				},
			},
			"updateSite": &graphql.Field{
				Type: siteType,
				Args: graphql.FieldConfigArgument{
					"id":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"location": &graphql.ArgumentConfig{Type: graphql.String},
					"priority": &graphql.ArgumentConfig{Type: graphql.Int},
					"tags":     &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					siteID := strArg(p, "id")

					err := gw.sites.Update(p.Context, types.Site{
						ID:       siteID,
						Name:     strArg(p, "name"),
						Location: strArg(p, "location"),
						Priority: intArg(p, "priority"),
						Tags:     tagsArg(p, "tags"),
					})
					if err != nil {
						return nil, err
					}

					// the backend only acks, fetch the updated record
					return gw.sites.Get(p.Context, siteID)
				},
			},
			"modifySite": &graphql.Field{
				Type: siteType,
				Args: graphql.FieldConfigArgument{
					"id":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"name":     &graphql.ArgumentConfig{Type: graphql.String},
					"location": &graphql.ArgumentConfig{Type: graphql.String},
					"priority": &graphql.ArgumentConfig{Type: graphql.Int},
					"tags":     &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					fields := map[string]any{}
					for _, name := range []string{"name", "location", "priority", "tags"} {
						if v, ok := p.Args[name]; ok {
							fields[name] = v
						}
					}

					return gw.sites.Modify(p.Context, strArg(p, "id"), fields)
				},
			},
			"deleteSite": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					err := gw.sites.Delete(p.Context, strArg(p, "id"))
					if err != nil {
						return false, err
					}
					return true, nil
				},
			},
			"createSensor": &graphql.Field{
				Type: sensorType,
				Args: graphql.FieldConfigArgument{
					"siteId":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"name":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"unit":    &graphql.ArgumentConfig{Type: graphql.String},
					"minSafe": &graphql.ArgumentConfig{Type: graphql.Float},
					"maxSafe": &graphql.ArgumentConfig{Type: graphql.Float},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					sensor := types.Sensor{
						SiteID: strArg(p, "siteId"),
						Name:   strArg(p, "name"),
						Unit:   strArg(p, "unit"),
					}
					if v := floatArg(p, "minSafe"); v != nil {
						sensor.MinSafe = *v
					}
					if v := floatArg(p, "maxSafe"); v != nil {
						sensor.MaxSafe = *v
					}

					return gw.sensors.Create(p.Context, sensor)
				},
			},
			"updateSensor": &graphql.Field{
				Type: sensorType,
				Args: graphql.FieldConfigArgument{
					"id":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"siteId":  &graphql.ArgumentConfig{Type: graphql.String},
					"name":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"unit":    &graphql.ArgumentConfig{Type: graphql.String},
					"minSafe": &graphql.ArgumentConfig{Type: graphql.Float},
					"maxSafe": &graphql.ArgumentConfig{Type: graphql.Float},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					sensorID := strArg(p, "id")

					sensor := types.Sensor{
						ID:     sensorID,
						SiteID: strArg(p, "siteId"),
						Name:   strArg(p, "name"),
						Unit:   strArg(p, "unit"),
					}
					if v := floatArg(p, "minSafe"); v != nil {
						sensor.MinSafe = *v
					}
					if v := floatArg(p, "maxSafe"); v != nil {
						sensor.MaxSafe = *v
					}

					err := gw.sensors.Update(p.Context, sensor)
					if err != nil {
						return nil, err
					}

					return gw.sensors.Get(p.Context, sensorID)
				},
			},
			"deleteSensor": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					err := gw.sensors.Delete(p.Context, strArg(p, "id"))
					if err != nil {
						return false, err
					}
					return true, nil
				},
			},
			"installSwitch": &graphql.Field{
				Type: switchType,
				Args: graphql.FieldConfigArgument{
					"siteId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"name":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"state":  &graphql.ArgumentConfig{Type: graphql.String},
					"states": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.String))},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return gw.switches.Install(p.Context, types.Switch{
						SiteID: strArg(p, "siteId"),
						Name:   strArg(p, "name"),
						State:  strArg(p, "state"),
						States: tagsArg(p, "states"),
					})
				},
			},
			"setSwitch": &graphql.Field{
				Type: switchType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"state": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return gw.switches.Set(p.Context, strArg(p, "id"), strArg(p, "state"))
				},
			},
			"removeSwitch": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					err := gw.switches.Remove(p.Context, strArg(p, "id"))
					if err != nil {
						return false, err
					}
					return true, nil
				},
			},
			"createAsset": &graphql.Field{
				Type: assetType,
				Args: graphql.FieldConfigArgument{
					"siteId":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"kind":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"serialNo":   &graphql.ArgumentConfig{Type: graphql.String},
					"material":   &graphql.ArgumentConfig{Type: graphql.String},
					"resolution": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return gw.assets.Create(p.Context, types.Asset{
						SiteID:     strArg(p, "siteId"),
						Kind:       strArg(p, "kind"),
						SerialNo:   strArg(p, "serialNo"),
						Material:   strArg(p, "material"),
						Resolution: strArg(p, "resolution"),
					})
				},
			},
			"updateAsset": &graphql.Field{
				Type: assetType,
				Args: graphql.FieldConfigArgument{
					"id":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"siteId":     &graphql.ArgumentConfig{Type: graphql.String},
					"kind":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"serialNo":   &graphql.ArgumentConfig{Type: graphql.String},
					"material":   &graphql.ArgumentConfig{Type: graphql.String},
					"resolution": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return gw.assets.Update(p.Context, types.Asset{
						ID:         strArg(p, "id"),
						SiteID:     strArg(p, "siteId"),
						Kind:       strArg(p, "kind"),
						SerialNo:   strArg(p, "serialNo"),
						Material:   strArg(p, "material"),
						Resolution: strArg(p, "resolution"),
					})
				},
			},
			"deleteAsset": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"kind": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					err := gw.assets.Delete(p.Context, strArg(p, "id"), strArg(p, "kind"))
					if err != nil {
						return false, err
					}
					return true, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
