/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package scalesetvms

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v5"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"k8s.io/utils/ptr"

	"sigs.k8s.io/azure-vmss-inventory/azure/services/scalesetvms/mock_scalesetvms"
	gomockinternal "sigs.k8s.io/azure-vmss-inventory/internal/test/matchers/gomock"
)

func errInternal() *azcore.ResponseError {
	return &azcore.ResponseError{
		RawResponse: &http.Response{
			Body:       io.NopCloser(strings.NewReader("#: Internal Server Error: StatusCode=500")),
			StatusCode: http.StatusInternalServerError,
		},
	}
}

func TestListInstanceNames(t *testing.T) {
	testcases := []struct {
		name          string
		expect        func(c *mock_scalesetvms.MockClientMockRecorder)
		expected      []string
		expectedError string
	}{
		{
			name: "names in list order",
			expect: func(c *mock_scalesetvms.MockClientMockRecorder) {
				c.List(gomockinternal.AContext(), "my-rg", "my-vmss").Return([]*armcompute.VirtualMachineScaleSetVM{
					{Name: ptr.To("my-vmss_0"), InstanceID: ptr.To("0")},
					{Name: ptr.To("my-vmss_2"), InstanceID: ptr.To("2")},
					{Name: ptr.To("my-vmss_1"), InstanceID: ptr.To("1")},
				}, nil)
			},
			expected: []string{"my-vmss_0", "my-vmss_2", "my-vmss_1"},
		},
		{
			name: "empty scale set",
			expect: func(c *mock_scalesetvms.MockClientMockRecorder) {
				c.List(gomockinternal.AContext(), "my-rg", "my-vmss").Return(nil, nil)
			},
			expected: []string{},
		},
		{
			name: "missing name is kept as empty",
			expect: func(c *mock_scalesetvms.MockClientMockRecorder) {
				c.List(gomockinternal.AContext(), "my-rg", "my-vmss").Return([]*armcompute.VirtualMachineScaleSetVM{
					{Name: ptr.To("my-vmss_0")},
					{},
					nil,
				}, nil)
			},
			expected: []string{"my-vmss_0", ""},
		},
		{
			name: "list fails",
			expect: func(c *mock_scalesetvms.MockClientMockRecorder) {
				c.List(gomockinternal.AContext(), "my-rg", "my-vmss").Return(nil, errInternal())
			},
			expectedError: "failed to list instances of scale set my-vmss: #: Internal Server Error: StatusCode=500",
		},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g := NewWithT(t)
			t.Parallel()
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()
			clientMock := mock_scalesetvms.NewMockClient(mockCtrl)

			tc.expect(clientMock.EXPECT())

			s := &Service{Client: clientMock}
			names, err := s.ListInstanceNames(context.TODO(), "my-rg", "my-vmss")
			if tc.expectedError != "" {
				g.Expect(err).To(HaveOccurred())
				g.Expect(err.Error()).To(HavePrefix("failed to list instances of scale set my-vmss: "))
				return
			}
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(names).To(Equal(tc.expected))
		})
	}
}
