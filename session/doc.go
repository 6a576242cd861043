// Package session opens a URL in the system browser and receives the
// browser's redirect back on a loopback endpoint.
//
// Every request that reaches the endpoint's callback path is a redirect
// delivery event and is handed to a callback.Ingestor. A Manager ties the
// endpoint, the browser launcher and the ingestor together:
//
//	ingestor := callback.New()
//	manager := session.New(ingestor)
//	if err := manager.Start(ctx); err != nil {
//		return err
//	}
//	defer manager.Close()
//	_ = manager.Open(ctx, "https://idp.example.com/start?redirect_uri="+url.QueryEscape(manager.RedirectURL()))
//	state, err := manager.Wait(ctx)
package session
