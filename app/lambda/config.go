package lambda

import "github.com/ec2switch/ec2switch/models"

// ProxySource represents the source of a lambda request.
type ProxySource string

const (
	// ProxySourceDirect represents a plain invocation, e.g. by a
	// scheduled EventBridge rule or the Lambda console.
	ProxySourceDirect ProxySource = "DIRECT"

	// ProxySourceApiGatewayV1 represents an API Gateway v1 request.
	ProxySourceApiGatewayV1 ProxySource = "API_GW_V1"

	// ProxySourceApiGatewayV2 represents an API Gateway v2 request.
	ProxySourceApiGatewayV2 ProxySource = "API_GW_V2"

	// ProxySourceAlb represents an Application Load Balancer request.
	ProxySourceAlb ProxySource = "ALB"
)

func (p ProxySource) String() string {
	return string(p)
}

type Config struct {
	// ProxySource is the source of the AWS Lambda event.
	ProxySource ProxySource `conf:"lambda_proxy_source"`

	// Action is the action performed by direct invocations. It is
	// ignored for http proxy sources, which route by path.
	Action models.Action `conf:"handler_action"`
}
