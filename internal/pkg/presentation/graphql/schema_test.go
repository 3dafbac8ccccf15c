package graphql

import (
	"context"
	"testing"

	"github.com/diwise/iot-facility-mgmt/internal/pkg/testutil"
	"github.com/diwise/iot-facility-mgmt/pkg/client"
	"github.com/diwise/iot-facility-mgmt/pkg/types"
	"github.com/graphql-go/graphql"
	"github.com/matryer/is"
	"github.com/prometheus/client_golang/prometheus"
)

func testGateway(t *testing.T) (*Gateway, *testutil.SwitchFake, *testutil.AssetFake) {
	t.Helper()

	siteSrv := testutil.NewSiteServer()
	sensorSrv := testutil.NewSensorServer()
	t.Cleanup(siteSrv.Close)
	t.Cleanup(sensorSrv.Close)

	m := client.NewMetrics(prometheus.NewRegistry())
	switchFake := testutil.NewSwitchFake()
	assetFake := testutil.NewAssetFake()

	gw, err := New(
		client.NewSiteClient(siteSrv.URL, m),
		client.NewSensorClient(sensorSrv.URL, m),
		switchFake,
		assetFake,
	)
	if err != nil {
		t.Fatal(err)
	}

	return gw, switchFake, assetFake
}

func doQuery(t *testing.T, gw *Gateway, query string, vars map[string]any) map[string]any {
	t.Helper()

	result := graphql.Do(graphql.Params{
		Schema:         *gw.Schema(),
		RequestString:  query,
		VariableValues: vars,
		Context:        context.Background(),
	})
	if len(result.Errors) > 0 {
		t.Fatalf("query failed: %v", result.Errors)
	}

	return result.Data.(map[string]any)
}

func TestCreateSiteMutationReturnsTheCreatedRecord(t *testing.T) {
	is := is.New(t)
	gw, _, _ := testGateway(t)

	data := doQuery(t, gw, `mutation {
		createSite(name: "pumpstation norr", location: "57.1N 12.2E", priority: 2, tags: ["water"]) {
			id name location priority tags
		}
	}`, nil)

	site := data["createSite"].(map[string]any)
	is.True(site["id"].(string) != "")
	is.Equal("pumpstation norr", site["name"])
	is.Equal(2, site["priority"])
}

func TestSiteQueryReturnsNullForUnknownID(t *testing.T) {
	is := is.New(t)
	gw, _, _ := testGateway(t)

	data := doQuery(t, gw, `{ site(id: "nosuchsite") { id name } }`, nil)

	is.Equal(nil, data["site"])
}

func TestSiteFieldResolversFanOutToAllBackends(t *testing.T) {
	is := is.New(t)
	gw, switchFake, assetFake := testGateway(t)
	ctx := context.Background()

	created := doQuery(t, gw, `mutation { createSite(name: "reningsverk") { id } }`, nil)
	siteID := created["createSite"].(map[string]any)["id"].(string)

	doQuery(t, gw, `mutation($siteId: String!) {
		createSensor(siteId: $siteId, name: "ph inlet", unit: "pH", minSafe: 6.5, maxSafe: 8.5) { id }
	}`, map[string]any{"siteId": siteID})

	_, err := switchFake.Install(ctx, types.Switch{SiteID: siteID, Name: "inlet pump", States: []string{"on", "off"}})
	is.NoErr(err)

	_, err = assetFake.Create(ctx, types.Asset{SiteID: siteID, Kind: types.AssetKindAlarm, SerialNo: "A-1"})
	is.NoErr(err)
	_, err = assetFake.Create(ctx, types.Asset{SiteID: siteID, Kind: types.AssetKindCamera, SerialNo: "C-1", Resolution: "1920x1080"})
	is.NoErr(err)

	data := doQuery(t, gw, `query($id: String!) {
		site(id: $id) {
			name
			sensors { name unit }
			switches { name state }
			assets {
				... on Alarm { serialNo }
				... on Camera { serialNo resolution }
			}
		}
	}`, map[string]any{"id": siteID})

	site := data["site"].(map[string]any)
	is.Equal("reningsverk", site["name"])

	sensors := site["sensors"].([]any)
	is.Equal(1, len(sensors))
	is.Equal("ph inlet", sensors[0].(map[string]any)["name"])

	sws := site["switches"].([]any)
	is.Equal(1, len(sws))
	is.Equal("on", sws[0].(map[string]any)["state"])

	assets := site["assets"].([]any)
	is.Equal(2, len(assets))
	is.Equal("A-1", assets[0].(map[string]any)["serialNo"])
	is.Equal("1920x1080", assets[1].(map[string]any)["resolution"])
}

func TestSetSwitchMutationReturnsTheUpdatedRecord(t *testing.T) {
	is := is.New(t)
	gw, switchFake, _ := testGateway(t)

	sw, err := switchFake.Install(context.Background(), types.Switch{
		SiteID: "site-01", Name: "inlet pump", States: []string{"on", "off"},
	})
	is.NoErr(err)
	is.Equal("on", sw.State)

	data := doQuery(t, gw, `mutation($id: String!) {
		setSwitch(id: $id, state: "off") { id state }
	}`, map[string]any{"id": sw.ID})

	result := data["setSwitch"].(map[string]any)
	is.Equal(sw.ID, result["id"])
	is.Equal("off", result["state"])
}

func TestUpdateSiteMutationFetchesTheUpdatedRecord(t *testing.T) {
	is := is.New(t)
	gw, _, _ := testGateway(t)

	created := doQuery(t, gw, `mutation { createSite(name: "pumpstation norr", priority: 1) { id } }`, nil)
	siteID := created["createSite"].(map[string]any)["id"].(string)

	data := doQuery(t, gw, `mutation($id: String!) {
		updateSite(id: $id, name: "pumpstation syd", priority: 3) { id name priority }
	}`, map[string]any{"id": siteID})

	site := data["updateSite"].(map[string]any)
	is.Equal("pumpstation syd", site["name"])
	is.Equal(3, site["priority"])
}

func TestModifySiteMutationOnlyTouchesPresentArguments(t *testing.T) {
	is := is.New(t)
	gw, _, _ := testGateway(t)

	created := doQuery(t, gw, `mutation { createSite(name: "pumpstation norr", location: "57.1N 12.2E") { id } }`, nil)
	siteID := created["createSite"].(map[string]any)["id"].(string)

	data := doQuery(t, gw, `mutation($id: String!) {
		modifySite(id: $id, priority: 5) { name location priority }
	}`, map[string]any{"id": siteID})

	site := data["modifySite"].(map[string]any)
	is.Equal("pumpstation norr", site["name"])
	is.Equal("57.1N 12.2E", site["location"])
	is.Equal(5, site["priority"])
}

func TestAssetQueryResolvesUnionMembers(t *testing.T) {
	is := is.New(t)
	gw, _, assetFake := testGateway(t)

	camera, err := assetFake.Create(context.Background(), types.Asset{
		SiteID: "site-01", Kind: types.AssetKindCamera, SerialNo: "C-1", Resolution: "1280x720",
	})
	is.NoErr(err)

	data := doQuery(t, gw, `query($id: String!) {
		asset(id: $id) {
			... on Alarm { id material }
			... on Camera { id resolution }
		}
	}`, map[string]any{"id": camera.ID})

	asset := data["asset"].(map[string]any)
	is.Equal(camera.ID, asset["id"])
	is.Equal("1280x720", asset["resolution"])
}

func TestDeleteSensorMutation(t *testing.T) {
	is := is.New(t)
	gw, _, _ := testGateway(t)

	created := doQuery(t, gw, `mutation {
		createSensor(siteId: "site-01", name: "flow meter") { id }
	}`, nil)
	sensorID := created["createSensor"].(map[string]any)["id"].(string)

	data := doQuery(t, gw, `mutation($id: String!) { deleteSensor(id: $id) }`, map[string]any{"id": sensorID})
	is.Equal(true, data["deleteSensor"])

	after := doQuery(t, gw, `query($id: String!) { sensor(id: $id) { id } }`, map[string]any{"id": sensorID})
	is.Equal(nil, after["sensor"])
}
