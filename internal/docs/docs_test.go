// Copyright 2025 The OpenWeather MCP Authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0
// license that can be found in the LICENSE file.

package docs

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIReferenceResource(t *testing.T) {
	server := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "v0.0.1"}, nil)
	Register(server)

	ctx, cancel := context.WithCancel(context.Background())
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		cs.Close()
		cancel()
		<-errCh
	})

	list, err := cs.ListResources(ctx, nil)
	require.NoError(t, err)
	require.Len(t, list.Resources, 1)
	assert.Equal(t, URI, list.Resources[0].URI)
	assert.Equal(t, "text/markdown", list.Resources[0].MIMEType)

	res, err := cs.ReadResource(ctx, &mcp.ReadResourceParams{URI: URI})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Equal(t, URI, res.Contents[0].URI)
	assert.Contains(t, res.Contents[0].Text, "get-current-weather")
	assert.Contains(t, res.Contents[0].Text, "Authorization: Bearer")
}
